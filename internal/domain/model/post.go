//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"strings"
	"time"
)

// CommunityPost is one entry on the community board.
type CommunityPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"author_id"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// PostFilter narrows a community board listing. Zero value matches everything.
type PostFilter struct {
	Category string // exact match when non-empty
	Query    string // case-insensitive substring over title+body
}

// Matches reports whether the post satisfies the filter.
func (p CommunityPost) Matches(f PostFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q)
}
