package identity

import (
	"context"
	"sync"
)

// MemoryStorage keeps the id in process memory.
type MemoryStorage struct {
	mu sync.Mutex
	id string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.id == "" {
		return "", ErrNotFound
	}
	return m.id, nil
}

func (m *MemoryStorage) Store(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = id
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.id = ""
	return nil
}

var _ Storage = (*MemoryStorage)(nil)
