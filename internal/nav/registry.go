package nav

import "sync"

// Registry scopes routers to sessions. Anonymous visitors (empty key) get a
// fresh router per lookup so they always start from the home view; session
// keys get a stable router that survives across requests until the session
// is dropped. Map access is guarded because distinct sessions are served
// concurrently; the routers themselves lock per transition, since one
// session can have several requests in flight at once.
type Registry struct {
	mu      sync.Mutex
	routers map[string]*Router
	scroll  ScrollSink
}

// NewRegistry constructs a registry whose routers share the given sink.
func NewRegistry(scroll ScrollSink) *Registry {
	if scroll == nil {
		panic("nav: NewRegistry requires a ScrollSink")
	}
	return &Registry{routers: make(map[string]*Router), scroll: scroll}
}

// For returns the router for the given session id, creating it on first use.
func (g *Registry) For(sessionID string) *Router {
	if sessionID == "" {
		return NewRouter(g.scroll)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.routers[sessionID]
	if !ok {
		r = NewRouter(g.scroll)
		g.routers[sessionID] = r
	}
	return r
}

// Drop discards the router for a session. Called on logout so navigation
// state does not outlive the identity it was built under.
func (g *Registry) Drop(sessionID string) {
	if sessionID == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.routers, sessionID)
}
