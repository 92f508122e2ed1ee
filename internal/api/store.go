package api

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/samdwyer/mazewalk/internal/game"
)

// Store errors.
var (
	ErrSessionNotFound = errors.New("maze session not found")
	ErrTooManySessions = errors.New("too many maze sessions")
)

// SessionStore keeps maze sessions in memory. Every read or mutation of a
// session runs under the store lock, so each session has one writer at a time.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*game.Session
	maxSessions int
	logger      *log.Logger
}

// NewSessionStore creates an empty store holding at most maxSessions sessions.
func NewSessionStore(maxSessions int, logger *log.Logger) *SessionStore {
	return &SessionStore{
		sessions:    make(map[uuid.UUID]*game.Session),
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Create generates a new maze session and stores it. view is called with the
// new session before the lock is released.
func (s *SessionStore) Create(ctx context.Context, size int, seed int64, view func(*game.Session)) error {
	session, err := game.NewSession(ctx, size, seed)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return ErrTooManySessions
	}
	s.sessions[session.ID] = session
	view(session)

	s.logger.Info("maze session created", "session", session.ID, "size", size, "seed", session.Seed)
	return nil
}

// View calls fn with the session for reading.
func (s *SessionStore) View(id uuid.UUID, fn func(*game.Session)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	fn(session)
	return nil
}

// Update calls fn with the session for mutation.
func (s *SessionStore) Update(id uuid.UUID, fn func(*game.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	fn(session)
	return nil
}

// Delete removes a session.
func (s *SessionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)

	s.logger.Info("maze session deleted", "session", id)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
