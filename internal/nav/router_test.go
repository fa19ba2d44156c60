package nav

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
)

// countingScroll records how many times the scroll sink was reset.
type countingScroll struct{ resets int }

func (c *countingScroll) Reset() { c.resets++ }

func session(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "s-1",
		UserID:    "u-1",
		Email:     "a@b.com",
		Name:      "a",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestRouterInitialState(t *testing.T) {
	r := NewRouter(NopScroll{})
	assert.Equal(t, view.Home, r.Current())
	assert.Nil(t, r.Payload())
}

func TestNewRouterNilSinkPanics(t *testing.T) {
	assert.Panics(t, func() { NewRouter(nil) })
	assert.Panics(t, func() { NewRegistry(nil) })
}

func TestNavigatePublicViews(t *testing.T) {
	r := NewRouter(NopScroll{})
	assert.Equal(t, view.Community, r.Navigate(nil, view.Community, nil))
	assert.Equal(t, view.CareerMap, r.Navigate(nil, view.CareerMap, nil))
	assert.Equal(t, view.Login, r.Navigate(nil, view.Login, nil))
}

func TestNavigateAnonymousToAdminUsers(t *testing.T) {
	r := NewRouter(NopScroll{})
	got := r.Navigate(nil, view.AdminUsers, nil)
	assert.Equal(t, view.Login, got)
	// A denied navigation never touches the identity; anonymous stays anonymous,
	// which the next public navigation demonstrates.
	assert.Equal(t, view.Home, r.Navigate(nil, view.Home, nil))
}

func TestNavigateCompanyAdminExcludedFromUsers(t *testing.T) {
	r := NewRouter(NopScroll{})
	sess := session(domainauth.RoleCompanyAdmin)

	assert.Equal(t, view.AdminDashboard, r.Navigate(sess, view.AdminDashboard, nil))
	assert.Equal(t, view.AdminContents, r.Navigate(sess, view.AdminContents, nil))
	assert.Equal(t, view.Login, r.Navigate(sess, view.AdminUsers, nil))
}

func TestNavigateSuperAdminReachesUsers(t *testing.T) {
	r := NewRouter(NopScroll{})
	assert.Equal(t, view.AdminUsers, r.Navigate(session(domainauth.RoleSuperAdmin), view.AdminUsers, nil))
}

func TestNavigateDetailWithoutPayloadFallsBackHome(t *testing.T) {
	r := NewRouter(NopScroll{})
	assert.Equal(t, view.Home, r.Navigate(nil, view.Detail, nil))
	assert.Nil(t, r.Payload())
}

func TestNavigateDetailRetainsPayload(t *testing.T) {
	r := NewRouter(NopScroll{})
	content := &model.Content{ID: "c-1", Title: "Autumn Design Contest"}

	assert.Equal(t, view.Detail, r.Navigate(nil, view.Detail, content))
	require.NotNil(t, r.Payload())
	assert.Equal(t, "c-1", r.Payload().ID)

	// Re-entering detail without a payload reuses the retained record.
	assert.Equal(t, view.Detail, r.Navigate(nil, view.Detail, nil))
	assert.Equal(t, "c-1", r.Payload().ID)
}

func TestNavigateIdempotent(t *testing.T) {
	r := NewRouter(NopScroll{})
	sess := session(domainauth.RoleSuperAdmin)

	first := r.Navigate(sess, view.AdminUsers, nil)
	second := r.Navigate(sess, view.AdminUsers, nil)
	assert.Equal(t, first, second)
	assert.Equal(t, view.AdminUsers, second)
}

func TestNavigateReappliesAuthorizationAfterLogout(t *testing.T) {
	r := NewRouter(NopScroll{})
	sess := session(domainauth.RoleSuperAdmin)

	assert.Equal(t, view.AdminDashboard, r.Navigate(sess, view.AdminDashboard, nil))

	// Identity gone: the same target now yields login, never the admin content.
	assert.Equal(t, view.Login, r.Navigate(nil, view.AdminDashboard, nil))
}

func TestLoginLogoutThenAdminNavigate(t *testing.T) {
	r := NewRouter(NopScroll{})
	sess := session(domainauth.RoleUser)

	assert.Equal(t, view.Home, r.Navigate(sess, view.Home, nil))
	// logout: session is gone
	assert.Equal(t, view.Login, r.Navigate(nil, view.AdminDashboard, nil))
}

func TestScrollResetOnEveryTransition(t *testing.T) {
	sink := &countingScroll{}
	r := NewRouter(sink)

	r.Navigate(nil, view.Community, nil)
	r.Navigate(nil, view.AdminUsers, nil) // denial still transitions (to login)
	r.Navigate(nil, view.Detail, nil)     // fallback still transitions (to home)
	assert.Equal(t, 3, sink.resets)
}

func TestRegistryScopesRoutersPerSession(t *testing.T) {
	g := NewRegistry(NopScroll{})

	a := g.For("sess-a")
	b := g.For("sess-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, g.For("sess-a"))

	a.Navigate(nil, view.Community, nil)
	assert.Equal(t, view.Community, g.For("sess-a").Current())
	assert.Equal(t, view.Home, g.For("sess-b").Current())

	g.Drop("sess-a")
	assert.Equal(t, view.Home, g.For("sess-a").Current())
}

func TestRegistryAnonymousAlwaysFresh(t *testing.T) {
	g := NewRegistry(NopScroll{})
	r := g.For("")
	r.Navigate(nil, view.Community, nil)
	assert.Equal(t, view.Home, g.For("").Current())
}

func TestNavigateConcurrentTabs(t *testing.T) {
	g := NewRegistry(NopScroll{})
	sess := session(domainauth.RoleUser)
	payload := &model.Content{ID: "c-1", Title: "Spring Hackathon"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := g.For(sess.ID)
			for j := 0; j < 100; j++ {
				r.Navigate(sess, view.Community, nil)
				r.Navigate(sess, view.Detail, payload)
				_ = r.Current()
				_ = r.Payload()
			}
		}()
	}
	wg.Wait()

	r := g.For(sess.ID)
	assert.Equal(t, view.Detail, r.Current())
	require.NotNil(t, r.Payload())
	assert.Equal(t, "c-1", r.Payload().ID)
}
