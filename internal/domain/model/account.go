//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import (
	"strings"
	"time"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
)

// Account is a directory record shown on the admin users view. It is distinct
// from a live Session: accounts are seeded catalog data, sessions are what
// login creates.
type Account struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     domainauth.Role `json:"role"`
	Company  string          `json:"company,omitempty"`
	JoinedAt time.Time       `json:"joined_at"`
}

// AccountFilter narrows the admin users listing. Zero value matches everything.
type AccountFilter struct {
	Role  domainauth.Role // exact match when non-empty
	Query string          // case-insensitive substring over name+email
}

// Matches reports whether the account satisfies the filter.
func (a Account) Matches(f AccountFilter) bool {
	if f.Role != "" && a.Role != f.Role {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Email), q)
}
