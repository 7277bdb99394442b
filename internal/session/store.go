package session

import (
	"sync"
	"time"

	"bus-booking/pkg/utils"

	"github.com/google/uuid"
)

// Session maps an opaque bearer token to a signed-in identity.
// Sessions never expire; they live until logout or Clear.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time
}

// Store is the in-process session mapping. It is deliberately volatile:
// a restart signs everyone out. Construct one at startup and inject it;
// there is no package-level instance.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

// Create issues a fresh token for the identity and records the session.
func (s *Store) Create(userID uuid.UUID, email string) string {
	token := utils.GenerateSessionToken()

	s.mu.Lock()
	s.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.mu.Unlock()

	return token
}

// Get looks a token up without side effects.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Delete removes a session and reports whether one existed.
func (s *Store) Delete(token string) bool {
	s.mu.Lock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	return ok
}

func (s *Store) Has(token string) bool {
	s.mu.RLock()
	_, ok := s.sessions[token]
	s.mu.RUnlock()
	return ok
}

// Clear removes every session. Shutdown/test teardown utility.
func (s *Store) Clear() {
	s.mu.Lock()
	s.sessions = make(map[string]Session)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.sessions)
	s.mu.RUnlock()
	return n
}
