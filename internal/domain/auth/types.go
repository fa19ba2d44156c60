package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleCompanyAdmin Role = "company_admin"
	RoleUser         Role = "user"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to the admin area.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleCompanyAdmin
}

// ParseRole normalizes a submitted role value. Unknown values map to RoleUser
// so a tampered login form can never grant more than the weakest role.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return RoleUser
	}
	return r
}

// Identity represents the authenticated principal returned by an identity
// provider. Adapters map provider-specific claims into this shape. In mock
// mode the identity is synthesized from the login form without verification.
type Identity struct {
	UserID    string // stable user identifier (uuid in mock mode, sub claim in OIDC mode)
	Email     string
	Name      string // display name, derived from the email local part when absent
	Groups    []string
	ExpiresAt time.Time // absolute expiry from the provider
}

// Session is the server-side record we keep for an authenticated user.
// ID is an opaque session identifier. Company is set only for company_admin
// sessions; it is captured for future organization scoping but not used for
// filtering (observed behavior of the system this replaces).
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Company   string    `json:"company,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool { return now.After(s.ExpiresAt) }
