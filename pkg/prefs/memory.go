// LingoTeach - language-teaching voice skill backend
// License: MIT

package prefs

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store. Preferences do not survive restarts;
// it exists for tests and throwaway local runs.
type MemoryStore struct {
	mu    sync.RWMutex
	codes map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codes: map[string]string{}}
}

func (s *MemoryStore) Get(_ context.Context, identity string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.codes[identity]
	return code, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, identity, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[identity] = code
	return nil
}
