// Package session holds the persisted authentication session: the token
// proving identity to the remote store and the signed-in display name.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// record is the on-disk shape of a session.
type record struct {
	Token   string    `json:"token"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the process-wide session state. It is either fully present
// (token and name) or fully absent; Establish and Clear are the only
// writers. Safe for concurrent readers.
type Store struct {
	path string

	mu  sync.RWMutex
	cur *record
}

// Open loads the session persisted at path, if any. A missing file is the
// normal unauthenticated state, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if r.Token != "" {
		s.cur = &r
	}
	return s, nil
}

// Establish stores token and display name together and persists them.
// The token is stored verbatim; it is opaque to this layer.
func (s *Store) Establish(token, name string) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}

	r := record{Token: token, Name: name, SavedAt: time.Now()}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	// 0600: the token is a credential.
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.mu.Lock()
	s.cur = &r
	s.mu.Unlock()
	return nil
}

// Token returns the stored token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// Name returns the stored display name, or "" when unset.
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Name
}

// Present reports whether a token is stored. Only token presence gates
// access; a missing name is tolerated for display.
func (s *Store) Present() bool {
	return s.Token() != ""
}

// Clear removes the session from memory and disk. Clearing an absent
// session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
