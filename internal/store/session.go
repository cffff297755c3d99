package store

import (
	"sync"

	"github.com/aaronzipp/rock-paper-showdown/internal/game"
	"github.com/aaronzipp/rock-paper-showdown/internal/models"
)

// SessionStore owns the single active session and the most recent completed
// game's winner. At most one session exists per process.
type SessionStore struct {
	mu         sync.RWMutex
	session    *models.Session
	lastWinner string
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// StartSession validates the player names and installs a new active session,
// replacing any existing one unconditionally. Starting a new game abandons
// an unfinished one; the retained winner is left untouched.
func (s *SessionStore) StartSession(player1, player2 string) (*models.Session, error) {
	if err := game.ValidatePlayers(player1, player2); err != nil {
		return nil, err
	}
	session := game.NewSession(player1, player2)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return session, nil
}

// Current returns the session in the slot, active or complete.
func (s *SessionStore) Current() (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, false
	}
	return s.session, true
}

// CompleteSession records the retained winner for the next session. A tied
// final retains no winner.
func (s *SessionStore) CompleteSession(winner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if winner == models.TieMarker {
		s.lastWinner = ""
		return
	}
	s.lastWinner = winner
}

// CurrentState reports whether a session is actively being played and the
// retained winner name, empty if none. The client uses this at load time to
// pre-fill player 1's name.
func (s *SessionStore) CurrentState() (active bool, lastWinner string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active = s.session != nil && s.session.Status == models.StatusActive
	return active, s.lastWinner
}
