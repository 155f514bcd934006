// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the in-memory state of the signed-in user: the
// username and the derived encryption key. Nothing here is ever persisted.
package session

import (
	"sync"

	"github.com/MKhiriev/go-patient-vault/internal/crypto"
	"github.com/MKhiriev/go-patient-vault/internal/utils"
)

// Session is the process-wide authenticated-user holder. The zero value is an
// empty session ready for use. Safe for concurrent access.
type Session struct {
	mu       sync.RWMutex
	id       string
	username string
	key      *crypto.Key
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Start replaces the current user and key. A previously held key that is
// not the new one is destroyed. Returns a fresh session id used to correlate
// log lines of one sign-in.
func (s *Session) Start(username string, key *crypto.Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil && s.key != key {
		s.key.Destroy()
	}

	s.id = utils.NewSessionID()
	s.username = username
	s.key = key
	return s.id
}

// Current returns the signed-in user and key. ok is false when nobody is
// signed in.
func (s *Session) Current() (username string, key *crypto.Key, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.username == "" || s.key == nil {
		return "", nil, false
	}
	return s.username, s.key, true
}

// Username returns the signed-in username or "".
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// ID returns the id of the current sign-in or "".
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// IsActive reports whether both a user and a key are present.
func (s *Session) IsActive() bool {
	_, _, ok := s.Current()
	return ok
}

// Clear signs the user out and destroys the key material.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key.Destroy()
	s.key = nil
	s.username = ""
	s.id = ""
}
