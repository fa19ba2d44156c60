package httpx

import (
	"context"
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"net/url"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
	"github.com/kwakyosong/platform-ui/internal/http/ui/viewmodel"
	"github.com/kwakyosong/platform-ui/internal/nav"
	"github.com/kwakyosong/platform-ui/internal/service"
)

const errMsgFixBelow = "Please fix the errors below."

// ContentsService is a minimal interface for UI needs.
type ContentsService interface {
	List(ctx context.Context, filter model.ContentFilter) ([]*model.Content, error)
	Get(ctx context.Context, id string) (*model.Content, error)
	AdminList(ctx context.Context, filter model.ContentFilter, expr string) ([]*model.Content, error)
	ValidateExpr(expr string) error
	Create(ctx context.Context, c *model.Content) (*model.Content, error)
	Update(ctx context.Context, id string, c *model.Content) (*model.Content, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CommunityPostsService is a minimal interface for the community board UI.
type CommunityPostsService interface {
	List(ctx context.Context, filter model.PostFilter) ([]*model.CommunityPost, error)
	Get(ctx context.Context, id string) (*model.CommunityPost, error)
}

// CareerPathsService is a minimal interface for the career map UI.
type CareerPathsService interface {
	List(ctx context.Context) ([]*model.CareerPath, error)
	Get(ctx context.Context, id string) (*model.CareerPath, error)
}

// AccountsService is a minimal interface for the user administration UI.
type AccountsService interface {
	List(ctx context.Context, filter model.AccountFilter) ([]*model.Account, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DashboardStatsService is a minimal interface for the admin dashboard UI.
type DashboardStatsService interface {
	Stats(ctx context.Context) (*service.DashboardStats, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ ContentsService       = (*service.ContentService)(nil)
	_ CommunityPostsService = (*service.CommunityService)(nil)
	_ CareerPathsService    = (*service.CareerService)(nil)
	_ AccountsService       = (*service.AccountService)(nil)
	_ DashboardStatsService = (*service.DashboardService)(nil)
)

// UIHandlers serves browser-facing routes. Each request resolves the
// session's navigation router, runs one transition through it, and renders
// the view the router settled on.
type UIHandlers struct {
	T         *TemplateRenderer
	Nav       *nav.Registry
	Contents  ContentsService
	Posts     CommunityPostsService
	Careers   CareerPathsService
	Accounts  AccountsService
	Dashboard DashboardStatsService
	IsDev     bool // Development mode flag for enhanced error reporting
	Logger    *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// navigate runs one transition on the session-scoped router and reports the
// view that was settled on. The caller renders when the destination matches
// the request and redirects when the router substituted another view (login
// on denial, home when the detail payload is missing).
func (h *UIHandlers) navigate(r *http.Request, target view.View, payload *model.Content) (view.View, *nav.Router) {
	sess := GetSessionFromContext(r.Context())
	router := h.Nav.For(sessionIDOf(sess))
	dest := router.Navigate(sess, target, payload)
	return dest, router
}

func sessionIDOf(sess *domainauth.Session) string {
	if sess == nil {
		return ""
	}
	return sess.ID
}

// redirectTo sends the browser to the given view, using Hx-Redirect for htmx
// requests so the address bar follows the substitution.
func (h *UIHandlers) redirectTo(w http.ResponseWriter, r *http.Request, dest view.View) {
	path := view.Path(dest)
	if dest == view.Login {
		path = loginPathFor(r)
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(path)
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// loginPathFor preserves the attempted destination across the login redirect.
func loginPathFor(r *http.Request) string {
	if p := safeRedirectPath(r.URL.RequestURI()); p != "/" {
		return "/login?redirect_uri=" + url.QueryEscape(p)
	}
	return "/login"
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title     string
	PageTitle string
	View      view.View
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: string(meta.View),
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	session := GetSessionFromContext(r.Context())
	if session != nil {
		layout.User = &viewmodel.User{
			Email:   session.Email,
			Name:    session.Name,
			Role:    string(session.Role),
			Company: session.Company,
		}
		layout.IsAuthenticated = true
	}

	switch meta.View {
	case view.AdminDashboard, view.AdminContents, view.AdminUsers:
		layout.IsAdminArea = true
	}

	for _, link := range nav.Links(session, meta.View) {
		layout.Nav = append(layout.Nav, viewmodel.NavLink{
			Href:   link.Href,
			Label:  link.Label,
			Active: link.Active,
		})
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"IsAdminArea":     layout.IsAdminArea,
		"Nav":             layout.Nav,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// PageSpec defines metadata and an optional fetch for page-specific data.
type PageSpec struct {
	Meta  PageMeta
	Fetch func(ctx context.Context, data map[string]any) error
}

// Page builds base data, optionally fetches content data, and renders.
func (h *UIHandlers) Page(w http.ResponseWriter, r *http.Request, spec PageSpec) {
	data := basePageData(r, spec.Meta)
	if spec.Fetch != nil {
		if err := spec.Fetch(r.Context(), data); err != nil {
			h.logger().ErrorContext(r.Context(), "page data fetch failed",
				"view", string(spec.Meta.View), "error", err)
			markPageError(data)
		}
	}
	h.renderNavPage(w, r, data)
}

// renderNavPage renders a page with proper HTMX partial support. Partial
// responses carry the scroll-reset trigger: a navigation transition always
// lands the viewport at the top, matching what a full page load does.
func (h *UIHandlers) renderNavPage(w http.ResponseWriter, r *http.Request, data any) {
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	setNavTriggers(w, r.URL.Path)

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

// setNavTriggers emits the post-swap client events for a navigation response:
// the scroll reset and the nav active-state update. Both ride one Hx-Trigger
// header since setting it twice would overwrite the first event.
func setNavTriggers(w http.ResponseWriter, path string) {
	payload := map[string]any{
		ScrollResetEvent: true,
		"nav:activate":   map[string]string{"path": path},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		SetHXScrollReset(w)
		return
	}
	w.Header().Set("Hx-Trigger", string(b))
}

func markPageError(data map[string]any) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	data["ErrorMessage"] = "An unexpected error occurred. Please try again."
}

func layoutFromMap(data any) viewmodel.Layout {
	m, ok := data.(map[string]any)
	if !ok {
		return viewmodel.Layout{}
	}

	layout := viewmodel.Layout{}
	if v, ok := m["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := m["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := m["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

func extractLayoutInfo(data any) viewmodel.Layout {
	if provider, ok := data.(viewmodel.LayoutProvider); ok {
		if layout := provider.LayoutData(); layout != nil {
			return *layout
		}
	}
	if layout, ok := data.(viewmodel.Layout); ok {
		return layout
	}
	if layout, ok := data.(*viewmodel.Layout); ok && layout != nil {
		return *layout
	}
	return layoutFromMap(data)
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div style="padding: 20px; background: #fee; border: 2px solid #c33; border-radius: 4px; margin: 20px; font-family: monospace;">
				<h2 style="color: #c33; margin-top: 0;">Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre style="background: #fff; padding: 10px; border: 1px solid #ccc; overflow-x: auto;">` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	http.Error(w, "internal server error", http.StatusInternalServerError)
}
