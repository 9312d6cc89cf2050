package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrKeyNotFound is returned by Read when no list was ever written under the
// key. Callers treat it as "use your default", not as a failure.
var ErrKeyNotFound = errors.New("list key not found")

// MemoryStore keeps each list as a marshaled JSON blob keyed by name. It is
// the per-process server branch: contents do not survive a restart and are
// not shared across instances.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, key string, out any) error {
	s.mu.RLock()
	raw, ok := s.lists[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode list %q: %w", key, err)
	}
	return nil
}

func (s *MemoryStore) Write(_ context.Context, key string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode list %q: %w", key, err)
	}

	s.mu.Lock()
	s.lists[key] = raw
	s.mu.Unlock()
	return nil
}
