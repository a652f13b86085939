package session

import "sync"

// Session holds the bearer credential for the catalog service. It is created
// once at application start and handed to the catalog client and the offer
// service; logout clears it. The token itself is opaque to the dashboard.
type Session struct {
	mu    sync.RWMutex
	token string
}

// New creates a session, optionally seeded with a token from configuration.
func New(token string) *Session {
	return &Session{token: token}
}

// Token returns the current bearer token, empty if signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the bearer token.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the token. Mutations are blocked until a new one is set.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// HasToken reports whether a bearer token is present.
func (s *Session) HasToken() bool {
	return s.Token() != ""
}
