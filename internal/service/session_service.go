package service

import (
	"context"
	"sync"
	"time"

	"school_admin/internal/models"

	"github.com/google/uuid"
)

const defaultSessionTTL = 12 * time.Hour

// SessionService is an in-memory session store keyed by an opaque token.
// Sessions are ephemeral: a restart logs everyone out, which is acceptable
// for this site and keeps the credential store free of session rows.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ Sessions = (*SessionService)(nil)

// Create registers a new session for the user and returns it.
func (s *SessionService) Create(userID int, fullname string) *models.Session {
	now := s.now()
	sess := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		FullName:  fullname,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return sess
}

// Get resolves a token to its session. Expired sessions miss immediately,
// even if the sweeper has not removed them yet.
func (s *SessionService) Get(token string) (*models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || sess.Expired(s.now()) {
		return nil, false
	}
	return sess, true
}

// Destroy invalidates the session. Unknown tokens are a no-op.
func (s *SessionService) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Run removes expired sessions every tick until ctx is cancelled.
func (s *SessionService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *SessionService) sweep() {
	now := s.now()
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}
