package memory

import (
	"context"
	"sync"
)

// PreferenceStore is an in-memory ports.PreferenceStore.
type PreferenceStore struct {
	mu    sync.RWMutex
	files map[string]map[string]string
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{files: make(map[string]map[string]string)}
}

func (s *PreferenceStore) Get(ctx context.Context, file string, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.files[file][key]
	return v, ok, nil
}

// Put applies all values under one lock.
func (s *PreferenceStore) Put(ctx context.Context, file string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[file]
	if !ok {
		f = make(map[string]string, len(values))
		s.files[file] = f
	}
	for k, v := range values {
		f[k] = v
	}
	return nil
}
