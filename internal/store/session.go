package store

import (
	"github.com/charmbracelet/log"
	"github.com/dhkim-dev/cinewish/internal/models"
)

// SessionStore holds the singleton logged-in identity plus the remembered
// email used to prefill the login form on return visits.
type SessionStore struct {
	kv     KV
	logger *log.Logger
}

// NewSessionStore creates a SessionStore over the given backend.
func NewSessionStore(kv KV, logger *log.Logger) *SessionStore {
	return &SessionStore{kv: kv, logger: logger}
}

// Save overwrites the session record. When remember is set the email is also
// kept in a separate slot; otherwise that slot is cleared.
func (s *SessionStore) Save(email string, remember bool) {
	if err := setJSON(s.kv, SessionKey, models.Session{Email: email, Remember: remember}); err != nil && s.logger != nil {
		s.logger.Warn("failed to persist session", "error", err)
	}

	if remember {
		if err := s.kv.Set(RememberEmailKey, []byte(email)); err != nil && s.logger != nil {
			s.logger.Warn("failed to persist remembered email", "error", err)
		}
	} else {
		s.kv.Remove(RememberEmailKey)
	}
}

// Current returns the active session, or nil when absent or corrupt.
func (s *SessionStore) Current() *models.Session {
	var session models.Session
	if !getJSON(s.kv, SessionKey, &session) || session.Email == "" {
		return nil
	}
	return &session
}

// Logout deletes the session record. The remembered email is left in place
// so the login form can still prefill.
func (s *SessionStore) Logout() {
	s.kv.Remove(SessionKey)
}

// RememberedEmail returns the remembered login email, empty when none.
func (s *SessionStore) RememberedEmail() string {
	raw, ok := s.kv.Get(RememberEmailKey)
	if !ok {
		return ""
	}
	return string(raw)
}
