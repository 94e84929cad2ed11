package storage

import (
	"encoding/json"

	"time-tracker-client/internal/domain"
	"time-tracker-client/internal/errors"
)

// Keys for persisted session state.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Session wraps a Store with the authenticated-session operations the rest
// of the client uses. Presence of the token key is the sole authentication
// check.
type Session struct {
	store Store
}

// NewSession creates a Session over the given store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// SaveCredentials persists the session token and user profile after a
// successful login.
func (s *Session) SaveCredentials(token string, user *domain.User) error {
	if err := s.store.Set(keyToken, token); err != nil {
		return err
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return errors.NewStorageError("encode user profile", err)
	}
	return s.store.Set(keyUser, string(encoded))
}

// Token returns the stored session token, if any.
func (s *Session) Token() (string, bool) {
	token, ok, err := s.store.Get(keyToken)
	if err != nil || !ok {
		return "", false
	}
	return token, true
}

// User returns the stored user profile, if any.
func (s *Session) User() (*domain.User, bool) {
	encoded, ok, err := s.store.Get(keyUser)
	if err != nil || !ok {
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal([]byte(encoded), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Authenticated reports whether a session token is present.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear removes the stored token and user profile.
func (s *Session) Clear() error {
	if err := s.store.Delete(keyToken); err != nil {
		return err
	}
	return s.store.Delete(keyUser)
}
