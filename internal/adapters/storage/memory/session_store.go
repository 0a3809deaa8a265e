package memory

import (
	"sync"
	"time"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

type sessionSlot struct {
	turn    sync.Mutex // serializes UpdateSession per session
	session *domain.Session
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*sessionSlot
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*sessionSlot),
		now:      time.Now,
	}
}

func (s *SessionStore) CreateSession(session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return domain.ErrSessionExists
	}

	s.sessions[session.ID] = &sessionSlot{session: snapshot(session)}
	return nil
}

// GetSession returns a snapshot; later turns do not change it.
func (s *SessionStore) GetSession(id domain.SessionID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return snapshot(slot.session), nil
}

// UpdateSession applies turns on the same session one at a time. fn runs
// without the store lock held, so other sessions are not blocked by it.
func (s *SessionStore) UpdateSession(id domain.SessionID, fn func(domain.History) domain.History) (*domain.Session, error) {
	s.mu.RLock()
	slot, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	slot.turn.Lock()
	defer slot.turn.Unlock()

	s.mu.RLock()
	current := slot.session.History.Clone()
	s.mu.RUnlock()

	next := fn(current)

	s.mu.Lock()
	defer s.mu.Unlock()
	slot.session.History = next.Clone()
	slot.session.UpdatedAt = s.now().UTC()
	return snapshot(slot.session), nil
}

func snapshot(sess *domain.Session) *domain.Session {
	cp := *sess
	cp.History = sess.History.Clone()
	return &cp
}
