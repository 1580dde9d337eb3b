// Package session holds in-progress onboarding conversations in memory.
// Sessions do not survive restarts and never expire on their own: an
// abandoned conversation can be resumed at any time.
package session

import (
	"sync"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

// Store is a concurrency-safe keyed session store. Last writer wins per
// identity. It also provides per-identity mutual exclusion so the router can
// serialize processing of events for the same conversation.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	locks sync.Map // map[string]*sync.Mutex, one per identity, never shrunk
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*domain.Session)}
}

// Get returns the open session for an identity, or nil if none exists.
func (s *Store) Get(phone string) *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[phone]
}

// Put stores (or overwrites) the session for an identity.
func (s *Store) Put(phone string, sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[phone] = sess
}

// Delete removes the session for an identity. Deleting a missing session is
// not an error.
func (s *Store) Delete(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, phone)
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Lock acquires the per-identity mutex and returns its unlock function.
// Events for the same identity must not be processed concurrently.
func (s *Store) Lock(phone string) func() {
	val, _ := s.locks.LoadOrStore(phone, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
