package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	v := Required("Title", 10)

	assert.Empty(t, v("Hackathon"))
	assert.Empty(t, v("  Hackathon  "))
	assert.Equal(t, "Title is required.", v("   "))
	assert.Equal(t, "Title cannot exceed 10 characters.", v("a very long title"))

	// Rune count, not byte count.
	assert.Empty(t, Required("Title", 4)("한국어게"))
}

func TestOptional(t *testing.T) {
	v := Optional("Organizer", 5)

	assert.Empty(t, v(""))
	assert.Empty(t, v("Acme"))
	assert.Equal(t, "Organizer cannot exceed 5 characters.", v("Acme Corp"))
}

func TestIntRange(t *testing.T) {
	v := IntRange("Max participants", 0, 100)

	assert.Empty(t, v("0"))
	assert.Empty(t, v(" 100 "))
	assert.Equal(t, "Max participants must be a number.", v("many"))
	assert.Equal(t, "Max participants must be between 0 and 100.", v("101"))
	assert.Equal(t, "Max participants must be between 0 and 100.", v("-1"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Category", []string{"contest", "event", "education", "community"})

	assert.Empty(t, v("contest"))
	assert.Empty(t, v("EDUCATION"))
	assert.Equal(t,
		"Category must be one of: contest, event, education, community",
		v("sports"))
	assert.NotEmpty(t, v(""))
}

func TestHTTPSURL(t *testing.T) {
	v := HTTPSURL("Image", 50)

	assert.Empty(t, v("https://cdn.example.com/banner.png"))
	assert.Empty(t, v("http://localhost:8080/x.png"))
	assert.Equal(t, "Image is required.", v(""))
	assert.Equal(t, "Enter a valid http(s) URL.", v("ftp://example.com/x"))
	assert.Equal(t, "Enter a valid http(s) URL.", v("not a url"))
	assert.Equal(t, "Image cannot exceed 50 characters.",
		v("https://example.com/"+strings.Repeat("a", 60)))
}

func TestFieldValidator_StopsAtFirstFailure(t *testing.T) {
	errs := New().
		Validate("title", "", Required("Title", 200)).
		Validate("category", "sports",
			OneOf("Category", []string{"contest", "event"})).
		Validate("organizer", "Acme", Optional("Organizer", 200)).
		Errors()

	assert.Len(t, errs, 2)
	assert.Equal(t, "Title is required.", errs["title"])
	assert.Contains(t, errs["category"], "must be one of")
	assert.NotContains(t, errs, "organizer")
}

func TestFieldValidator_FirstErrorPerFieldWins(t *testing.T) {
	errs := New().
		Validate("title", "", Required("Title", 200)).
		Validate("title", "fine", Required("Title", 200)).
		Errors()

	assert.Equal(t, "Title is required.", errs["title"])
}
