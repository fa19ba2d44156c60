package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
	"github.com/kwakyosong/platform-ui/internal/nav"
	"github.com/kwakyosong/platform-ui/internal/ports"
	"github.com/kwakyosong/platform-ui/internal/service"
)

// stubSessionReader resolves session ids against a fixed map.
type stubSessionReader struct {
	sessions map[string]*domainauth.Session
}

func (s *stubSessionReader) GetSession(_ context.Context, sessionID string) (*domainauth.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return nil, ports.ErrSessionNotFound
}

func sessionWithRole(id string, role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        id,
		UserID:    "user-" + id,
		Email:     id + "@example.com",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newStubReader(sessions ...*domainauth.Session) *stubSessionReader {
	m := make(map[string]*domainauth.Session, len(sessions))
	for _, s := range sessions {
		m[s.ID] = s
	}
	return &stubSessionReader{sessions: m}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func browserRequest(method, target, sessionID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "text/html")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	return req
}

func TestRequireViewBrowser_AnonymousRedirectsToLogin(t *testing.T) {
	reader := newStubReader()
	handler := RequireViewBrowser(reader, view.AdminDashboard)(okHandler())

	req := browserRequest(http.MethodGet, "/admin/dashboard", "")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestRequireViewBrowser_UserRoleRedirected(t *testing.T) {
	reader := newStubReader(sessionWithRole("u1", domainauth.RoleUser))
	handler := RequireViewBrowser(reader, view.AdminContents)(okHandler())

	req := browserRequest(http.MethodGet, "/admin/contents", "u1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?redirect_uri=")
}

func TestRequireViewBrowser_DenialKeepsSessionCookie(t *testing.T) {
	reader := newStubReader(sessionWithRole("u1", domainauth.RoleUser))
	handler := RequireViewBrowser(reader, view.AdminUsers)(okHandler())

	req := browserRequest(http.MethodGet, "/admin/users", "u1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// A denied navigation must never log the visitor out.
	resp := w.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, SessionCookieName, c.Name, "denial must not touch the session cookie")
	}
}

func TestRequireViewBrowser_CompanyAdminScope(t *testing.T) {
	reader := newStubReader(sessionWithRole("ca", domainauth.RoleCompanyAdmin))

	t.Run("allowed on contents", func(t *testing.T) {
		handler := RequireViewBrowser(reader, view.AdminContents)(okHandler())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, browserRequest(http.MethodGet, "/admin/contents", "ca"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied on users", func(t *testing.T) {
		handler := RequireViewBrowser(reader, view.AdminUsers)(okHandler())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, browserRequest(http.MethodGet, "/admin/users", "ca"))
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestRequireViewBrowser_SuperAdminAllowed(t *testing.T) {
	reader := newStubReader(sessionWithRole("sa", domainauth.RoleSuperAdmin))

	for _, target := range []view.View{view.AdminDashboard, view.AdminContents, view.AdminUsers} {
		handler := RequireViewBrowser(reader, target)(okHandler())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, browserRequest(http.MethodGet, view.Path(target), "sa"))
		assert.Equal(t, http.StatusOK, w.Code, "super admin should reach %s", target)
	}
}

func TestRequireViewBrowser_HTMXDenialUsesHxRedirect(t *testing.T) {
	reader := newStubReader()
	handler := RequireViewBrowser(reader, view.AdminDashboard)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Hx-Redirect"), "/login?redirect_uri=")
}

func TestRequireView_APIErrors(t *testing.T) {
	reader := newStubReader(sessionWithRole("u1", domainauth.RoleUser))

	t.Run("anonymous gets 401", func(t *testing.T) {
		handler := RequireView(reader, view.AdminUsers)(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authentication_required")
	})

	t.Run("user role gets 403", func(t *testing.T) {
		handler := RequireView(reader, view.AdminUsers)(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "u1"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient_permissions")
	})
}

func TestOptionalAuth_AttachesSessionWhenPresent(t *testing.T) {
	reader := newStubReader(sessionWithRole("u1", domainauth.RoleUser))

	var got *domainauth.Session
	handler := OptionalAuth(reader)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := browserRequest(http.MethodGet, "/", "u1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	// Anonymous requests pass through with no session.
	got = nil
	handler.ServeHTTP(httptest.NewRecorder(), browserRequest(http.MethodGet, "/", ""))
	assert.Nil(t, got)
}

func TestIsBrowserRequest_Classification(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    bool
	}{
		{name: "api path", path: "/api/contents", headers: map[string]string{"Accept": "text/html"}, want: false},
		{name: "static path", path: "/static/css/app.css", want: false},
		{name: "htmx request", path: "/community", headers: map[string]string{"Hx-Request": "true"}, want: true},
		{name: "html accept", path: "/", headers: map[string]string{"Accept": "text/html,application/xhtml+xml"}, want: true},
		{name: "json accept", path: "/", headers: map[string]string{"Accept": "application/json"}, want: false},
		{name: "no accept header", path: "/", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, isBrowserRequest(req))
		})
	}
}

// expiredSessionReader reports every lookup as an expired session.
type expiredSessionReader struct{}

func (expiredSessionReader) GetSession(_ context.Context, _ string) (*domainauth.Session, error) {
	return nil, service.ErrSessionExpired
}

func TestEvictingSessionReaderDropsExpiredRouters(t *testing.T) {
	registry := nav.NewRegistry(nav.NopScroll{})

	// Navigation state built while the session was alive.
	sess := sessionWithRole("s-expired", domainauth.RoleUser)
	registry.For(sess.ID).Navigate(sess, view.Community, nil)
	require.Equal(t, view.Community, registry.For(sess.ID).Current())

	reader := &evictingSessionReader{svc: expiredSessionReader{}, nav: registry}

	handler := OptionalAuth(reader)(okHandler())
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, browserRequest(http.MethodGet, "/", sess.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	// The registry no longer retains the session's router.
	assert.Equal(t, view.Home, registry.For(sess.ID).Current())
}

func TestEvictingSessionReaderKeepsLiveRouters(t *testing.T) {
	registry := nav.NewRegistry(nav.NopScroll{})
	sess := sessionWithRole("s-live", domainauth.RoleUser)
	registry.For(sess.ID).Navigate(sess, view.Community, nil)

	reader := &evictingSessionReader{svc: newStubReader(sess), nav: registry}

	got, err := reader.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, view.Community, registry.For(sess.ID).Current())
}
