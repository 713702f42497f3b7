package memory

import (
	"context"
	"sync"
	"time"
)

// NonceStore is an in-memory ports.NonceStore.
type NonceStore struct {
	mu     sync.Mutex
	nonces map[string]time.Time
	now    func() time.Time
}

func NewNonceStore() *NonceStore {
	return &NonceStore{nonces: make(map[string]time.Time), now: time.Now}
}

// CheckAndSet returns true if the nonce is new and records it for ttl.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.nonces {
		if !now.Before(exp) {
			delete(s.nonces, k)
		}
	}

	key := scope + ":" + nonce
	if _, used := s.nonces[key]; used {
		return false, nil
	}
	s.nonces[key] = now.Add(ttl)
	return true, nil
}
