// Package memstore provides process-local implementations of the session
// store, the catalog repositories, and the cache. It is the default backend:
// state lives for the lifetime of the process and nothing is persisted.
package memstore

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

// SessionStore keeps sessions in a map guarded by a mutex. Expired
// sessions are evicted lazily on Get.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domainauth.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errEmptySessionID
	}
	if sess.Expired(s.now()) {
		return errExpiredSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domainauth.Session{}, ports.ErrSessionNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type storeError string

func (e storeError) Error() string { return string(e) }

const (
	errEmptySessionID = storeError("session ID cannot be empty")
	errExpiredSession = storeError("session is expired")
)
