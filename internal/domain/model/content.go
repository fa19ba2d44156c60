//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"strings"
	"time"
)

// ContentCategory classifies a catalog entry.
type ContentCategory string

const (
	CategoryContest   ContentCategory = "contest"
	CategoryEvent     ContentCategory = "event"
	CategoryEducation ContentCategory = "education"
	CategoryCommunity ContentCategory = "community"
)

// Valid reports whether the category is supported.
func (c ContentCategory) Valid() bool {
	switch c {
	case CategoryContest, CategoryEvent, CategoryEducation, CategoryCommunity:
		return true
	default:
		return false
	}
}

// ParseContentCategory normalizes a category string and reports whether it is supported.
func ParseContentCategory(value string) (ContentCategory, bool) {
	c := ContentCategory(strings.ToLower(strings.TrimSpace(value)))
	if c.Valid() {
		return c, true
	}
	return "", false
}

// ContentStatus tracks where a content item sits in its lifecycle.
type ContentStatus string

const (
	StatusUpcoming ContentStatus = "upcoming"
	StatusOngoing  ContentStatus = "ongoing"
	StatusEnded    ContentStatus = "ended"
)

// Valid reports whether the status is supported.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusEnded:
		return true
	default:
		return false
	}
}

// Content represents one discoverable opportunity: a contest, event, or
// education program. Instances live in memory for the process lifetime; there
// is no backing store.
type Content struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Category            ContentCategory `json:"category"`
	Description         string          `json:"description"`
	Image               string          `json:"image"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	Organizer           string          `json:"organizer"`
	MaxParticipants     int             `json:"max_participants,omitempty"`
	CurrentParticipants int             `json:"current_participants"`
	Status              ContentStatus   `json:"status"`
	Tags                []string        `json:"tags"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

// Matches reports whether the content satisfies the filter: category equality
// when a category is set, and a case-insensitive substring match over title
// and description when a query is set.
func (c Content) Matches(f ContentFilter) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(c.Description), q)
}

// ContentFilter narrows a content listing. Zero value matches everything.
type ContentFilter struct {
	Category ContentCategory // exact match when non-empty
	Query    string          // case-insensitive substring over title+description
}
