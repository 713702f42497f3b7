package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore remembers signed-request nonces per credentials token.
// Keys are nonce:<scope>:<nonce> and expire after the replay window.
type NonceStore struct {
	client *goredis.Client
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{client: client}
}

// CheckAndSet reports true the first time nonce is seen under scope.
func (s *NonceStore) CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, nonceKey(scope, nonce), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce %s: %w", scope, err)
	}
	return fresh, nil
}

func nonceKey(scope, nonce string) string {
	return "nonce:" + scope + ":" + nonce
}
