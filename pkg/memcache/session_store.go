// pkg/memcache/session_store.go
package mem

import (
	"sync"
	"time"

	"concierge/internal/models/session_models"
)

// SessionStore holds every live conversation session. State never leaves the
// process: a session exists from creation until expiry or restart, which is
// exactly the lifetime the concierge promises.
//
// The store owns all session access. Each session carries its own lock, so
// requests for different sessions never contend; two requests for the same
// session serialize their critical sections through With.
type SessionStore interface {
	Put(session *session_models.Session)

	// With runs fn with the session under its per-session lock, refreshing
	// the idle expiry. It returns false without calling fn when the session
	// is unknown or expired. The session pointer must not escape fn.
	With(id string, fn func(session *session_models.Session)) bool

	// Has reports whether the session exists and has not expired.
	Has(id string) bool

	Delete(id string)

	// BeginTurn marks the session as having a streaming turn in flight.
	// It returns false when another turn is already running; callers must
	// reject the second turn rather than interleave writes. The mark is not
	// a lock: mutation still goes through With.
	BeginTurn(id string) bool
	EndTurn(id string)
}

type sessionEntry struct {
	mu        sync.Mutex
	session   *session_models.Session
	inFlight  bool
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.Mutex
	data map[string]*sessionEntry
	ttl  time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		data: make(map[string]*sessionEntry),
		ttl:  ttl,
	}
}

func (s *Sessions) Put(session *session_models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// lookup fetches the live entry, dropping it if expired. Holds only the map
// lock, never the entry lock.
func (s *Sessions) lookup(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return nil
	}
	return e
}

func (s *Sessions) With(id string, fn func(session *session_models.Session)) bool {
	e := s.lookup(id)
	if e == nil {
		return false
	}

	s.mu.Lock()
	e.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return true
}

func (s *Sessions) Has(id string) bool {
	return s.lookup(id) != nil
}

func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

func (s *Sessions) BeginTurn(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	if e.inFlight {
		return false
	}
	e.inFlight = true
	return true
}

func (s *Sessions) EndTurn(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.data[id]; ok {
		e.inFlight = false
	}
}
