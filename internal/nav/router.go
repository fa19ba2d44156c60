// Package nav owns navigation state: the current view, the transient detail
// payload, and the registry that scopes one router to each session. All role
// gating is delegated to the view package's Authorize.
package nav

import (
	"sync"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/model"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
)

// ScrollSink receives the scroll-reset signal emitted on every transition.
// The HTTP layer maps it to a scroll-top trigger for partial page swaps; full
// page loads reset scroll position on their own.
type ScrollSink interface {
	Reset()
}

// NopScroll is a ScrollSink that discards resets.
type NopScroll struct{}

func (NopScroll) Reset() {}

// Router is the per-session navigation state machine. Initial state is the
// home view. The registry hands the same instance to every request carrying
// the session cookie, and a browser with several tabs open issues those
// requests concurrently, so each transition runs under the router's lock.
type Router struct {
	mu      sync.Mutex
	current view.View
	payload *model.Content
	scroll  ScrollSink
}

// NewRouter constructs a router starting at the home view.
// The scroll sink is required wiring; passing nil is a programmer error.
func NewRouter(scroll ScrollSink) *Router {
	if scroll == nil {
		panic("nav: NewRouter requires a ScrollSink")
	}
	return &Router{current: view.Home, scroll: scroll}
}

// Current returns the view the router last settled on.
func (r *Router) Current() view.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Payload returns the content record retained for the detail view, if any.
func (r *Router) Payload() *model.Content {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payload
}

// Navigate performs one transition. The authorization decision comes from
// view.Authorize against the supplied session (nil = anonymous):
//
//   - Allow: current view becomes target. For the detail view the payload is
//     retained; a detail request with no payload and none retained falls back
//     to home instead of failing.
//   - RedirectLogin: current view becomes login. The session is left
//     untouched; a denied navigation never logs the user out.
//
// Every call resets the scroll sink. Repeating an identical call under an
// unchanged session yields the same state. The authorization check and the
// state change happen atomically with respect to other callers.
func (r *Router) Navigate(sess *domainauth.Session, target view.View, payload *model.Content) view.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.scroll.Reset()

	if view.Authorize(sess, target) == view.RedirectLogin {
		r.current = view.Login
		return r.current
	}

	if target == view.Detail {
		if payload != nil {
			r.payload = payload
		}
		if r.payload == nil {
			r.current = view.Home
			return r.current
		}
		r.current = view.Detail
		return r.current
	}

	r.current = target
	return r.current
}
