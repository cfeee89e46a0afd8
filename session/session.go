// Package session owns the bearer token: an in-memory holder read by the
// transport on every request, and a durable side-channel so a session
// survives process restarts. Every mutation keeps the two in sync.
package session

import "sync"

// Holder is the in-memory token holder. Safe for concurrent use. No
// validation is performed; any string is accepted as-is.
type Holder struct {
	mu    sync.RWMutex
	token string
}

func (h *Holder) SetToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

// Token returns the current token, or "" when no session is active.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Session pairs the in-memory holder with durable storage.
type Session struct {
	Holder
	storage Storage
}

func New(storage Storage) *Session {
	return &Session{storage: storage}
}

// Activate installs token in memory and persists it. The in-memory copy is
// set first so requests issued by the caller right after see the new token.
// A persist failure rolls the memory copy back and reports the error.
func (s *Session) Activate(token string) error {
	s.SetToken(token)
	if err := s.storage.Save(token); err != nil {
		s.SetToken("")
		return err
	}
	return nil
}

// Resume loads the durable token into memory. Returns "" without error when
// no token is stored.
func (s *Session) Resume() (string, error) {
	token, err := s.storage.Load()
	if err != nil {
		return "", err
	}
	s.SetToken(token)
	return token, nil
}

// Invalidate clears both copies. The memory copy is always cleared, even
// when removing the durable one fails.
func (s *Session) Invalidate() error {
	s.SetToken("")
	return s.storage.Clear()
}
