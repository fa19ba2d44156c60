package httpx

import (
	"net/http"
)

// TemplateDataBuilder accumulates page data on top of the shared layout map.
// Handlers with more than a couple of data keys use it instead of mutating
// the map inline.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData starts a builder seeded with the layout data for meta.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithError marks the page errored with a banner message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors attaches per-field validation messages.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With sets one data key.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the assembled template data.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}
