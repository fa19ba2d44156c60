package view

// Package view defines the closed set of addressable views and the role
// policy that gates them. Every view-gating decision in the application must
// route through Authorize; there are no inline role comparisons elsewhere.

import (
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
)

// View identifies one addressable screen of the application.
// The set is closed; adding a view is a compile-time change here plus a case
// in each exhaustive switch over View.
type View string

const (
	Home           View = "home"
	Detail         View = "detail"
	Community      View = "community"
	CareerMap      View = "career-map"
	Login          View = "login"
	AdminDashboard View = "admin-dashboard"
	AdminContents  View = "admin-contents"
	AdminUsers     View = "admin-users"
)

// All lists every defined view in navigation order.
func All() []View {
	return []View{Home, Detail, Community, CareerMap, Login, AdminDashboard, AdminContents, AdminUsers}
}

// Valid reports whether v is one of the defined views.
func (v View) Valid() bool {
	switch v {
	case Home, Detail, Community, CareerMap, Login, AdminDashboard, AdminContents, AdminUsers:
		return true
	default:
		return false
	}
}

// Parse maps an opaque identifier to a View. Unknown identifiers resolve to
// Home rather than failing; navigation has no error outcomes.
func Parse(s string) View {
	v := View(s)
	if !v.Valid() {
		return Home
	}
	return v
}

// RequiredRoles returns the set of roles allowed to reach v. An empty result
// means the view is public.
func RequiredRoles(v View) []domainauth.Role {
	switch v {
	case AdminDashboard, AdminContents:
		return []domainauth.Role{domainauth.RoleSuperAdmin, domainauth.RoleCompanyAdmin}
	case AdminUsers:
		return []domainauth.Role{domainauth.RoleSuperAdmin}
	case Home, Detail, Community, CareerMap, Login:
		return nil
	default:
		return nil
	}
}

// Decision is the outcome of an authorization check. Denial is not an error:
// it is a defined redirect to the login view.
type Decision int

const (
	// Allow grants the transition to the requested view.
	Allow Decision = iota
	// RedirectLogin substitutes the login view for the requested one.
	RedirectLogin
)

// Authorize evaluates whether the given session (nil = anonymous) may reach v.
// Pure and total: Allow iff the view's required-role set is empty, or the
// session is present and its role is in the set. Everything else redirects to
// login. The session itself is never mutated by a denial.
func Authorize(sess *domainauth.Session, v View) Decision {
	required := RequiredRoles(v)
	if len(required) == 0 {
		return Allow
	}
	if sess == nil {
		return RedirectLogin
	}
	for _, r := range required {
		if sess.Role == r {
			return Allow
		}
	}
	return RedirectLogin
}

// Path returns the URL path a view is served under.
func Path(v View) string {
	switch v {
	case Home:
		return "/"
	case Detail:
		return "/detail"
	case Community:
		return "/community"
	case CareerMap:
		return "/career-map"
	case Login:
		return "/login"
	case AdminDashboard:
		return "/admin/dashboard"
	case AdminContents:
		return "/admin/contents"
	case AdminUsers:
		return "/admin/users"
	default:
		return "/"
	}
}
