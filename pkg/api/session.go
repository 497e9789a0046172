package api

import "sync"

// Session holds the current bearer credential in memory only. It is never
// written to durable storage. A Session is injected into each Client rather
// than kept in process-wide state, so independent clients can carry
// independent credentials.
//
// Reads and writes are mutex-guarded. A request snapshots the token at send
// time; a request already in flight when Clear is called completes with the
// token it started with.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession creates an empty, unauthenticated session
func NewSession() *Session {
	return &Session{}
}

// Set replaces the current access token
func (s *Session) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the current access token, or "" when unauthenticated
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear drops the current access token. This is the only global recovery
// action the client supports.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Authenticated reports whether a credential is currently held
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
