package memory

import (
	"context"
	"sync"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
)

type cacheEntry struct {
	value     domain.CachedCurrencyResponse
	expiresAt time.Time
}

// CurrencyCache is an in-memory ports.CurrencyCache.
type CurrencyCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCurrencyCache() *CurrencyCache {
	return NewCurrencyCacheWithClock(time.Now)
}

// NewCurrencyCacheWithClock creates a cache that expires entries against now.
func NewCurrencyCacheWithClock(now func() time.Time) *CurrencyCache {
	return &CurrencyCache{entries: make(map[string]cacheEntry), now: now}
}

func (c *CurrencyCache) Get(ctx context.Context, key string) (*domain.CachedCurrencyResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	v := e.value
	return &v, nil
}

// Set replaces any entry stored under key and drops expired ones.
func (c *CurrencyCache) Set(ctx context.Context, key string, entry *domain.CachedCurrencyResponse, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{value: *entry, expiresAt: now.Add(ttl)}
	return nil
}

// Len reports how many entries are held, expired or not.
func (c *CurrencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
