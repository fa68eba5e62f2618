package game

import (
	"context"
	"sync"
)

// SessionStore keeps the snapshot of a player's unfinished session.
// Implementations: in-memory, Redis, Badger.
type SessionStore interface {
	Save(ctx context.Context, player string, snap SessionSnapshot) error
	Load(ctx context.Context, player string) (SessionSnapshot, bool, error)
	Delete(ctx context.Context, player string) error
}

type InMemorySessionStore struct {
	mu sync.Mutex
	m  map[string]SessionSnapshot
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		m: make(map[string]SessionSnapshot),
	}
}

func (s *InMemorySessionStore) Save(_ context.Context, player string, snap SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[player] = snap
	return nil
}

func (s *InMemorySessionStore) Load(_ context.Context, player string) (SessionSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.m[player]
	return snap, ok, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, player)
	return nil
}
