package utils

import (
	"sync"
	"time"
)

// AuthSession holds the signed-in state for the lifetime of the process.
// It replaces ambient token storage: the session is created at startup,
// injected into the API client, and populated/cleared by the account
// service on login and logout.
type AuthSession struct {
	mu        sync.RWMutex
	token     string
	userID    string
	email     string
	expiresAt time.Time
}

// NewAuthSession returns an empty (signed-out) session.
func NewAuthSession() *AuthSession {
	return &AuthSession{}
}

// SetToken stores a freshly issued token, inspecting it for the subject,
// email and expiry claims.
func (s *AuthSession) SetToken(token string) error {
	claims, err := InspectToken(token)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = claims.Subject
	s.email = claims.Email
	s.expiresAt = claims.ExpiresAt
	return nil
}

// Token returns the held token, or "" when signed out or expired.
// An expired token is dropped rather than sent on a doomed request.
func (s *AuthSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return ""
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		s.token = ""
		s.userID = ""
		s.email = ""
		s.expiresAt = time.Time{}
		return ""
	}
	return s.token
}

// SignedIn reports whether a usable token is held.
func (s *AuthSession) SignedIn() bool {
	return s.Token() != ""
}

// UserID returns the subject of the held token, or "".
func (s *AuthSession) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Email returns the email claim of the held token, or "".
func (s *AuthSession) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Clear drops the held token (logout).
func (s *AuthSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userID = ""
	s.email = ""
	s.expiresAt = time.Time{}
}
