package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rewards-mediation-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CurrencyCache implements ports.CurrencyCache with JSON values.
type CurrencyCache struct {
	client *goredis.Client
	prefix string
}

// NewCurrencyCache creates a new Redis-backed currency cache.
func NewCurrencyCache(client *goredis.Client) *CurrencyCache {
	return &CurrencyCache{
		client: client,
		prefix: "currency:",
	}
}

// Get returns nil, nil when the key does not exist.
func (c *CurrencyCache) Get(ctx context.Context, key string) (*domain.CachedCurrencyResponse, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis currency get: %w", err)
	}

	var entry domain.CachedCurrencyResponse
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, fmt.Errorf("decode cached currency response: %w", err)
	}
	return &entry, nil
}

// Set stores entry for ttl.
func (c *CurrencyCache) Set(ctx context.Context, key string, entry *domain.CachedCurrencyResponse, ttl time.Duration) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cached currency response: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis currency set: %w", err)
	}
	return nil
}
