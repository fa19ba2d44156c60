package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/nav"
	"github.com/kwakyosong/platform-ui/internal/service"
)

// mockAuthService is a test double for the auth service.
type mockAuthService struct {
	loginFunc         func(ctx context.Context, input service.LoginInput) (*domainauth.Session, error)
	beginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*domainauth.Session, error)
	getSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc        func(ctx context.Context, sessionID string) error
	logoutCalls       int
}

func testSession(id string) *domainauth.Session {
	return &domainauth.Session{
		ID:        id,
		UserID:    "user-1",
		Email:     "dana@example.com",
		Name:      "dana",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (m *mockAuthService) Login(ctx context.Context, input service.LoginInput) (*domainauth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, input)
	}
	return testSession("sess-1"), nil
}

func (m *mockAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if m.beginLoginFunc != nil {
		return m.beginLoginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.com/auth?state=test-state",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*domainauth.Session, error) {
	if m.completeLoginFunc != nil {
		return m.completeLoginFunc(ctx, input)
	}
	return testSession("sess-1"), nil
}

func (m *mockAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return testSession(sessionID), nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	m.logoutCalls++
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

func loginForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	resp := w.Result()
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandlers_Login_AlwaysSucceeds(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	// Any password works; it is never checked.
	w := httptest.NewRecorder()
	handlers.Login(w, loginForm(url.Values{
		"email":    {"dana@example.com"},
		"password": {"anything-at-all"},
		"role":     {"user"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := sessionCookieFrom(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "sess-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandlers_Login_PreservesRedirectURI(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	w := httptest.NewRecorder()
	handlers.Login(w, loginForm(url.Values{
		"email":        {"admin@example.com"},
		"role":         {"super_admin"},
		"redirect_uri": {"/admin/users"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))
}

func TestAuthHandlers_Login_RejectsExternalRedirect(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	w := httptest.NewRecorder()
	handlers.Login(w, loginForm(url.Values{
		"email":        {"dana@example.com"},
		"redirect_uri": {"https://evil.example.com/"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestAuthHandlers_Login_HTMXRedirect(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := loginForm(url.Values{"email": {"dana@example.com"}})
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	handlers.Login(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
}

func TestAuthHandlers_Login_BlankEmailStillSignsIn(t *testing.T) {
	var got service.LoginInput
	svc := &mockAuthService{
		loginFunc: func(_ context.Context, input service.LoginInput) (*domainauth.Session, error) {
			got = input
			return &domainauth.Session{ID: "sess-1", Email: "dev@example.com"}, nil
		},
	}
	handlers := &AuthHandlers{Svc: svc}

	w := httptest.NewRecorder()
	handlers.Login(w, loginForm(url.Values{"password": {"pw"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, got.Email)
	require.NotNil(t, sessionCookieFrom(t, w), "login must set a session cookie")
}

func TestAuthHandlers_Login_SaveFailureRedirectsWithBanner(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(_ context.Context, _ service.LoginInput) (*domainauth.Session, error) {
			return nil, errors.New("save session: store down")
		},
	}
	handlers := &AuthHandlers{Svc: svc}

	w := httptest.NewRecorder()
	handlers.Login(w, loginForm(url.Values{"email": {"dana@example.com"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?error=login_failed")
	assert.Nil(t, sessionCookieFrom(t, w), "failed login must not set a session cookie")
}

func TestAuthHandlers_LoginRedirect_MockModeForwardsToForm(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}, OAuthEnabled: false}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/admin/contents", nil)
	w := httptest.NewRecorder()
	handlers.LoginRedirect(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fadmin%2Fcontents", w.Header().Get("Location"))
}

func TestAuthHandlers_LoginRedirect_OAuthModeBeginsFlow(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}, OAuthEnabled: true}

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	w := httptest.NewRecorder()
	handlers.LoginRedirect(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "https://idp.example.com/auth")

	resp := w.Result()
	defer resp.Body.Close()
	assert.Len(t, resp.Cookies(), 3) // oauth_state, oauth_nonce, post_login_redirect
}

func TestAuthHandlers_Logout_Idempotent(t *testing.T) {
	svc := &mockAuthService{}
	registry := nav.NewRegistry(nav.NopScroll{})
	handlers := &AuthHandlers{Svc: svc, Nav: registry}

	t.Run("without a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		w := httptest.NewRecorder()
		handlers.Logout(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Zero(t, svc.logoutCalls)
	})

	t.Run("with a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
		w := httptest.NewRecorder()
		handlers.Logout(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, 1, svc.logoutCalls)

		cookie := sessionCookieFrom(t, w)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("twice with store failure", func(t *testing.T) {
		svc.logoutFunc = func(_ context.Context, _ string) error {
			return errors.New("session already gone")
		}
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
		w := httptest.NewRecorder()
		handlers.Logout(w, req)

		// Store errors do not surface: logout lands on home regardless.
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestAuthHandlers_Logout_HTMX(t *testing.T) {
	handlers := &AuthHandlers{Svc: &mockAuthService{}}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Hx-Request", "true")
	w := httptest.NewRecorder()
	handlers.Logout(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/", w.Header().Get("Hx-Redirect"))
}

func TestAuthHandlers_Status(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		handlers := &AuthHandlers{Svc: &mockAuthService{}}
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		w := httptest.NewRecorder()
		handlers.Status(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("authenticated", func(t *testing.T) {
		handlers := &AuthHandlers{Svc: &mockAuthService{}}
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
		w := httptest.NewRecorder()
		handlers.Status(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
		assert.Contains(t, w.Body.String(), "dana@example.com")
	})

	t.Run("expired session clears cookie", func(t *testing.T) {
		svc := &mockAuthService{
			getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
				return nil, service.ErrSessionExpired
			},
		}
		handlers := &AuthHandlers{Svc: svc}
		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
		w := httptest.NewRecorder()
		handlers.Status(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)

		cookie := sessionCookieFrom(t, w)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
	})
}
