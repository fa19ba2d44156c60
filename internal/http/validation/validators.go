// Package validation provides form-field validators for the admin screens.
// Each validator returns a user-facing message, empty when the value passes.
// Lengths are counted in runes so multibyte input is not penalized.
package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator checks one field value and returns an error message or "".
type Validator func(v string) string

// Required rejects empty values and values longer than maxLen runes.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		return tooLong(fieldName, v, maxLen)
	}
}

// Optional accepts empty values but caps non-empty ones at maxLen runes.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		return tooLong(fieldName, v, maxLen)
	}
}

// IntRange requires an integer between minVal and maxVal inclusive.
func IntRange(fieldName string, minVal, maxVal int) Validator {
	return func(v string) string {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fieldName + " must be a number."
		}
		if i < minVal || i > maxVal {
			return fmt.Sprintf("%s must be between %d and %d.", fieldName, minVal, maxVal)
		}
		return ""
	}
}

// OneOf requires the value to match one of the options, ignoring case.
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// HTTPSURL requires a non-empty http or https URL with a host, capped at
// maxLen runes.
func HTTPSURL(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if msg := tooLong(fieldName, v, maxLen); msg != "" {
			return msg
		}
		p, err := url.Parse(v)
		if err != nil || (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
			return "Enter a valid http(s) URL."
		}
		return ""
	}
}

func tooLong(fieldName, v string, maxLen int) string {
	if utf8.RuneCountInString(v) > maxLen {
		return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
	}
	return ""
}

// FieldValidator accumulates per-field errors across a form. Validators for
// a field run in order and stop at the first failure, so a field carries at
// most one message.
type FieldValidator struct {
	errors map[string]string
}

// New returns an empty FieldValidator.
func New() *FieldValidator {
	return &FieldValidator{errors: map[string]string{}}
}

// Validate runs the validators against value, recording the first failure
// under field. It returns the receiver for chaining.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, seen := fv.errors[field]; seen {
		return fv
	}
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Errors returns the accumulated messages keyed by field name.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
