package httpx

import "github.com/kwakyosong/platform-ui/internal/domain/view"

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "session_id"

// PageContentForm identifies the content create/edit form, a sub-screen of
// the admin contents view with its own template.
const PageContentForm = "admin-content-form"

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Content templates are defined once and reused to avoid per-call allocations.
// Keys are CurrentPage identifiers: every addressable view plus form
// sub-screens that render inside an admin view.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	string(view.Home):           "home-content",
	string(view.Detail):         "detail-content",
	string(view.Community):      "community-content",
	string(view.CareerMap):      "career-map-content",
	string(view.Login):          "login-content",
	string(view.AdminDashboard): "admin-dashboard-content",
	string(view.AdminContents):  "admin-contents-content",
	string(view.AdminUsers):     "admin-users-content",
	PageContentForm:             "content-form-content",
}

// ContentTemplateFor returns the content template serving the given
// CurrentPage. Unknown identifiers fall back to the home template, mirroring
// navigation's home fallback.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "home-content"
}
