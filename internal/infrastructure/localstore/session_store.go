// Package localstore persists gateway sessions in a single JSON file, for
// single-host deployments and tests. It is the durable key-value fallback
// when no Redis address is configured.
package localstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

// SessionStore keeps the session map in memory and mirrors every mutation
// to disk, so a restart rehydrates the logged-in state. An absent or
// corrupt file degrades to the logged-out state; New never fails.
type SessionStore struct {
	mu       sync.Mutex
	path     string
	sessions map[string]*domain.Session
}

var _ ports.SessionStore = (*SessionStore)(nil)

func New(path string) *SessionStore {
	s := &SessionStore{
		path:     path,
		sessions: make(map[string]*domain.Session),
	}
	s.rehydrate()
	return s
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Put(_ context.Context, id string, sess *domain.Session) error {
	if !sess.Valid() {
		return domain.ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = sess
	return s.persist()
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return s.persist()
}

func (s *SessionStore) rehydrate() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var loaded map[string]*domain.Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		return
	}

	// Drop any record violating the token+user invariant.
	for id, sess := range loaded {
		if sess.Valid() {
			s.sessions[id] = sess
		}
	}
}

// persist writes the whole map atomically (temp file + rename) so a crash
// mid-write leaves the previous file intact. Caller holds the lock.
func (s *SessionStore) persist() error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
