package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"unipick/internal/survey/models"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryStore keeps encoded sessions in process memory. Sessions are stored
// encoded so callers never share a Form with the store.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemory constructs an empty in-memory session store.
func NewMemory(ttl time.Duration) *InMemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *InMemoryStore) Save(_ context.Context, session *models.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || !s.now().Before(entry.expiresAt) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return decodeSession(entry.data)
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *InMemoryStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
