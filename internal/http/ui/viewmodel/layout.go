// Package viewmodel holds the shapes handed to HTML templates.
package viewmodel

// User represents the authenticated user context exposed to templates.
type User struct {
	Email   string
	Name    string
	Role    string
	Company string
}

// NavLink is one header navigation entry. The set of links is computed per
// request from the session, so the header never advertises a view the user
// cannot reach.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Layout captures shared chrome metadata (titles, navigation, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdminArea     bool
	User            *User
	Nav             []NavLink
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
