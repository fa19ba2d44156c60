package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	platform "github.com/kwakyosong/platform-ui"
	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
	"github.com/kwakyosong/platform-ui/internal/nav"
	"github.com/kwakyosong/platform-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Contents  *service.ContentService
	Posts     *service.CommunityService
	Careers   *service.CareerService
	Accounts  *service.AccountService
	Dashboard *service.DashboardService
	Auth      *service.AuthService
	Cache     core.CacheRepository

	CookieDomain string
	OAuthEnabled bool
	IsDev        bool         // Development mode flag for hot reloading, etc.
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	registry := nav.NewRegistry(scrollLog{logger: services.Logger})

	// Session lookups go through the evicting reader so expired sessions
	// release their navigation state instead of leaking it.
	var sessions AuthSessionReader
	if services.Auth != nil {
		sessions = &evictingSessionReader{svc: services.Auth, nav: registry}
	}

	registerHealthRoutes(mux, services.Cache)
	registerContentAPIRoutes(mux, &ContentHandlers{Svc: services.Contents}, sessions)
	registerAccountAPIRoutes(mux, &AccountHandlers{Svc: services.Accounts}, sessions)
	registerDashboardAPIRoutes(mux, &DashboardHandlers{Svc: services.Dashboard}, sessions)

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Nav:          registry,
		CookieDomain: services.CookieDomain,
		OAuthEnabled: services.OAuthEnabled,
		Logger:       services.Logger,
	}
	registerAuthRoutes(mux, authHandlers)

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticWithFallback(services.IsDev))

	// UI routes with template renderer
	uiHandlers := setupUIHandlers(services, registry)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Auth: sessions, CookieDomain: services.CookieDomain}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	handler := &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	return BrowserDetection()(handler)
}

// scrollLog satisfies nav.ScrollSink. Transitions log at debug level so
// navigation is traceable; the client-side scroll-to-top is driven per
// response by the htmx trigger.
type scrollLog struct{ logger *slog.Logger }

func (s scrollLog) Reset() {
	if s.logger != nil {
		s.logger.Debug("nav scroll reset")
	}
}

// setupDevMode configures template FS, critical CSS FS, and asset resolver for dev mode.
func setupDevMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS := os.DirFS(TemplatePathFromRoot)
	criticalCSSFS := os.DirFS("frontend/public")

	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return templateFS, criticalCSSFS, resolver
}

// setupProdMode configures template FS, critical CSS FS, and asset resolver for production mode.
func setupProdMode(diskManifestPath string) (fs.FS, fs.FS, *AssetResolver) {
	templateFS, err := fs.Sub(platform.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		templateFS = os.DirFS(TemplatePathFromRoot)
	}

	criticalCSSFS, resolver := setupProdAssets(diskManifestPath)
	return templateFS, criticalCSSFS, resolver
}

// setupProdAssets configures critical CSS FS and asset resolver for production mode.
func setupProdAssets(diskManifestPath string) (fs.FS, *AssetResolver) {
	staticSub, err := fs.Sub(platform.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return nil, tryDiskManifest(diskManifestPath)
	}

	resolver, err := NewAssetResolverFromFS(staticSub, "manifest.json")
	if err != nil {
		log.Printf("failed to load asset manifest from embedded FS: %v", err)
		return staticSub, tryDiskManifest(diskManifestPath)
	}

	return staticSub, resolver
}

// tryDiskManifest attempts to load the asset manifest from disk as a fallback.
func tryDiskManifest(diskManifestPath string) *AssetResolver {
	resolver, err := NewAssetResolverFromDisk(diskManifestPath)
	if err != nil {
		log.Printf(
			"failed to load asset manifest %s: %v; falling back to logical asset names",
			diskManifestPath,
			err,
		)
	}
	return resolver
}

// setupUIHandlers creates UI handlers with template renderer and asset resolver.
// In dev mode (services.IsDev=true), templates are loaded from disk for hot reloading.
// In production mode, templates come from the embedded FS.
func setupUIHandlers(services RouterServices, registry *nav.Registry) *UIHandlers {
	var templateFS fs.FS
	var criticalCSSFS fs.FS
	var resolver *AssetResolver

	diskManifestPath := filepath.Join("frontend", "static", "manifest.json")

	if services.IsDev {
		templateFS, criticalCSSFS, resolver = setupDevMode(diskManifestPath)
	} else {
		templateFS, criticalCSSFS, resolver = setupProdMode(diskManifestPath)
	}

	if resolver == nil {
		resolver = &AssetResolver{}
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS:    templateFS,
		Resolver:      resolver,
		CriticalCSSFS: criticalCSSFS,
		DevMode:       services.IsDev,
		Logger:        services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:         tr,
		Nav:       registry,
		Contents:  services.Contents,
		Posts:     services.Posts,
		Careers:   services.Careers,
		Accounts:  services.Accounts,
		Dashboard: services.Dashboard,
		IsDev:     services.IsDev,
		Logger:    services.Logger,
	}
}

// staticWithFallback serves /static/* assets.
// In dev mode (isDev=true), serves from disk with fallback for hot reloading.
// In production mode, serves from the embedded FS.
func staticWithFallback(isDev bool) http.Handler {
	if isDev {
		mfs := multiFS{
			http.Dir("frontend/static"),
			http.Dir("frontend/public"),
		}
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(mfs)))
	}

	staticSub, err := fs.Sub(platform.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		// Fallback to disk serving if embed fails
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// multiFS provides fallback filesystem for dev mode.
type multiFS []http.FileSystem

func (m multiFS) Open(name string) (http.File, error) {
	for _, fsys := range m {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		// ignore not-exist and try next, but return early on other errors
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, os.ErrNotExist
}

// staticWithCacheHeaders wraps a static file handler to add appropriate cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	// Content-hashed filenames including optional .map (e.g., app.abc123.js, app.abc123.js.map)
	hashedFilePattern := regexp.MustCompile(`\.[a-f0-9]{8}\.(?:js|css)(?:\.map)?$`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hashedFilePattern.MatchString(r.URL.Path) {
			// Hashed assets can be cached for a long time (1 year)
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	// Serve the request through the mux, capturing status, headers, and body
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	// Not a 404: write the captured response
	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

func registerHealthRoutes(mux *http.ServeMux, cache core.CacheRepository) {
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", readyHandler(cache))
}

// viewGate returns a no-op wrapper when auth is nil, otherwise gates the
// route behind the role policy of the given view.
func viewGate(auth AuthSessionReader, target view.View) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireView(auth, target)
}

func registerContentAPIRoutes(mux *http.ServeMux, h *ContentHandlers, auth AuthSessionReader) {
	// Reads are public, like the discovery view they back.
	mux.HandleFunc("GET /api/contents", h.List)
	mux.HandleFunc("GET /api/contents/{id}", h.GetByID)

	adminOnly := viewGate(auth, view.AdminContents)
	mux.Handle("POST /api/contents", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/contents/{id}", adminOnly(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/contents/{id}", adminOnly(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/contents/validate-expr", adminOnly(http.HandlerFunc(h.ValidateExpr)))
}

func registerAccountAPIRoutes(mux *http.ServeMux, h *AccountHandlers, auth AuthSessionReader) {
	adminOnly := viewGate(auth, view.AdminUsers)
	mux.Handle("GET /api/accounts", adminOnly(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/accounts/{id}", adminOnly(http.HandlerFunc(h.GetByID)))
	mux.Handle("DELETE /api/accounts/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerDashboardAPIRoutes(mux *http.ServeMux, h *DashboardHandlers, auth AuthSessionReader) {
	adminOnly := viewGate(auth, view.AdminDashboard)
	mux.Handle("GET /api/dashboard/stats", adminOnly(http.HandlerFunc(h.Stats)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.LoginRedirect)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         AuthSessionReader
	CookieDomain string
}

// sessionWrap attaches the session to context when present. Public views
// still need the session for the header and navigation state.
func (cfg uiRouteConfig) sessionWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return OptionalAuth(cfg.Auth)
}

// adminWrap gates a browser route behind the given view's role policy and
// adds CSRF protection for its form posts.
func (cfg uiRouteConfig) adminWrap(target view.View) func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	gate := RequireViewBrowser(cfg.Auth, target)
	return func(h http.Handler) http.Handler {
		return gate(csrf(h))
	}
}

// registerUIRoutes delegates to per-area UI route registration functions.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	registerUIPublicRoutes(mux, h, cfg)
	registerUIAdminRoutes(mux, h, cfg)
}

// registerUIPublicRoutes wires the views every visitor can reach.
func registerUIPublicRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.sessionWrap()
	mux.Handle("GET /{$}", wrap(http.HandlerFunc(h.Home)))
	mux.Handle("GET /detail", wrap(http.HandlerFunc(h.Detail)))
	mux.Handle("GET /detail/{id}", wrap(http.HandlerFunc(h.Detail)))
	mux.Handle("GET /community", wrap(http.HandlerFunc(h.Community)))
	mux.Handle("GET /career-map", wrap(http.HandlerFunc(h.CareerMap)))
	mux.Handle("GET /login", wrap(http.HandlerFunc(h.LoginPage)))
}

// registerUIAdminRoutes wires the role-gated administration views.
func registerUIAdminRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	dashboards := cfg.adminWrap(view.AdminDashboard)
	mux.Handle("GET /admin/dashboard", dashboards(http.HandlerFunc(h.AdminDashboard)))

	contents := cfg.adminWrap(view.AdminContents)
	mux.Handle("GET /admin/contents", contents(http.HandlerFunc(h.AdminContents)))
	mux.Handle("GET /admin/contents/new", contents(http.HandlerFunc(h.AdminContentNew)))
	mux.Handle("GET /admin/contents/{id}/edit", contents(http.HandlerFunc(h.AdminContentEdit)))
	mux.Handle("POST /admin/contents", contents(http.HandlerFunc(h.AdminContentCreate)))
	mux.Handle("POST /admin/contents/{id}", contents(http.HandlerFunc(h.AdminContentUpdate)))
	mux.Handle("POST /admin/contents/{id}/delete", contents(http.HandlerFunc(h.AdminContentDelete)))

	users := cfg.adminWrap(view.AdminUsers)
	mux.Handle("GET /admin/users", users(http.HandlerFunc(h.AdminUsers)))
	mux.Handle("POST /admin/users/{id}/delete", users(http.HandlerFunc(h.AdminUserDelete)))
}
