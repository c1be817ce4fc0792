package store

import (
	"context"
	"sync"

	"gitlab.com/dirk.krummacker/user-form/internal/model"
)

// MemoryStore keeps the users in a slice that lives as long as the process.
type MemoryStore struct {
	mu    sync.RWMutex
	users []model.User
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]model.User, 0, len(s.users)), s.users...), nil
}
