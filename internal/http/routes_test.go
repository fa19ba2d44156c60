package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwakyosong/platform-ui/internal/adapters/authroles"
	"github.com/kwakyosong/platform-ui/internal/adapters/memstore"
	"github.com/kwakyosong/platform-ui/internal/adapters/mockauth"
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/service"
)

// newTestRouter wires the full router against in-memory stores and the
// mock auth provider, the same shape the dev server runs with.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	contents := memstore.NewContentRepo([]*model.Content{
		{ID: "c-1", Title: "Spring Hackathon", Category: model.CategoryContest, Status: model.StatusOngoing},
	})
	posts := memstore.NewPostRepo(nil)
	careers := memstore.NewCareerRepo(nil)
	accounts := memstore.NewAccountRepo([]*model.Account{
		{ID: "a-1", Email: "dana@example.com", Name: "dana", Role: domainauth.RoleUser},
	})
	cache := memstore.NewCache()

	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider:        mockauth.NewProvider(mockauth.Config{SessionDuration: time.Hour}),
		Sessions:        memstore.NewSessionStore(),
		Roles:           authroles.StaticRoleMapper{},
		SessionDuration: time.Hour,
	})

	return NewRouter(RouterServices{
		Contents: service.NewContentService(service.ContentServiceOptions{Repo: contents}),
		Posts:    service.NewCommunityService(posts),
		Careers:  service.NewCareerService(careers),
		Accounts: service.NewAccountService(accounts),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Contents: contents,
			Posts:    posts,
			Accounts: accounts,
			Cache:    cache,
		}),
		Auth:  auth,
		Cache: cache,
	})
}

// loginAs runs the mock login flow and returns the session cookie.
func loginAs(t *testing.T, router http.Handler, email, role string) *http.Cookie {
	t.Helper()

	form := url.Values{"email": {email}, "role": {role}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in login response", SessionCookieName)
	return nil
}

func browserGet(router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "text/html")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicPages(t *testing.T) {
	router := newTestRouter(t)

	w := browserGet(router, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spring Hackathon")

	w = browserGet(router, "/career-map", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LoginThenAdminAccess(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAs(t, router, "boss@example.com", "super_admin")

	w := browserGet(router, "/admin/users", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dana@example.com")
}

func TestRouter_DeniedNavigationKeepsSession(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAs(t, router, "dana@example.com", "user")

	w := browserGet(router, "/admin/dashboard", cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?redirect_uri=%2Fadmin%2Fdashboard", w.Header().Get("Location"))

	// The denial must not clear the session; the home page still shows the user.
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, SessionCookieName, c.Name)
	}
	w = browserGet(router, "/", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dana@example.com")
}

func TestRouter_CompanyAdminScope(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAs(t, router, "biz@example.com", "company_admin")

	w := browserGet(router, "/admin/contents", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = browserGet(router, "/admin/users", cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestRouter_APIAuth(t *testing.T) {
	router := newTestRouter(t)

	// Content reads are public.
	req := httptest.NewRequest(http.MethodGet, "/api/contents", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spring Hackathon")

	// Dashboard stats need an admin session.
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_UnknownPathRendersNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := browserGet(router, "/no/such/page", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/no/such/page")
}

func TestRouter_AdminDashboardShowsRoleBreakdown(t *testing.T) {
	router := newTestRouter(t)
	cookie := loginAs(t, router, "boss@example.com", "super_admin")

	w := browserGet(router, "/admin/dashboard", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Accounts by role")
	assert.Contains(t, w.Body.String(), "badge-role")
}
