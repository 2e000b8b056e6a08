// Package testutil holds shared helpers for the package tests: an in-memory
// session store and environment setup for the cookie signing config.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/common/security"
	"quiz_admin_console/internal/domain/model"
	"quiz_admin_console/internal/platform/config"
)

var setupOnce sync.Once

// Setup loads the configuration and the JWT signer once per test binary.
func Setup(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		config.Load()
		security.InitJWT()
	})
}

// MemoryStore is a session.Store backed by a map, for tests that do not want
// a Redis dependency.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]model.Session)}
}

func (s *MemoryStore) Save(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	out := sess
	return &out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions the store holds.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// AdminSession saves a ready-made admin session and returns it.
func AdminSession(t *testing.T, store *MemoryStore) *model.Session {
	t.Helper()
	sess := &model.Session{
		ID:        "test-session",
		UserID:    "admin-1",
		Email:     "admin@example.com",
		Name:      "Test Admin",
		Role:      model.RoleAdmin,
		Token:     "upstream-bearer-token",
		CreatedAt: time.Now(),
	}
	if err := store.Save(context.Background(), sess, time.Hour); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
	return sess
}
