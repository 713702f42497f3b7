// Package memory holds process-local stores used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
)

// CredentialsRepo is an in-memory ports.CredentialsRepository.
type CredentialsRepo struct {
	mu    sync.RWMutex
	creds map[string]domain.Credentials
}

func NewCredentialsRepo() *CredentialsRepo {
	return &CredentialsRepo{creds: make(map[string]domain.Credentials)}
}

// Save stores creds without the plaintext security token.
func (r *CredentialsRepo) Save(ctx context.Context, creds *domain.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *creds
	stored.SecurityToken = ""
	if existing, ok := r.creds[creds.Token]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	r.creds[creds.Token] = stored
	return nil
}

func (r *CredentialsRepo) GetByToken(ctx context.Context, token string) (*domain.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creds[token]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CredentialsRepo) UpdateSecurityToken(ctx context.Context, token string, securityTokenEnc string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.creds[token]
	if !ok {
		return fmt.Errorf("credentials not found")
	}
	c.SecurityTokenEnc = securityTokenEnc
	r.creds[token] = c
	return nil
}
