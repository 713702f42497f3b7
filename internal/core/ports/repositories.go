package ports

import (
	"context"

	"rewards-mediation-gateway/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// CredentialsRepository persists credentials. The security token is stored
// only in its encrypted form (Credentials.SecurityTokenEnc).
type CredentialsRepository interface {
	// Save inserts or replaces the credentials identified by Token.
	Save(ctx context.Context, creds *domain.Credentials) error
	// GetByToken returns nil, nil when the token is unknown.
	GetByToken(ctx context.Context, token string) (*domain.Credentials, error)
	UpdateSecurityToken(ctx context.Context, token string, securityTokenEnc string) error
}

// PreferenceStore is a flat key-value store organised in named files.
type PreferenceStore interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, file string, key string) (string, bool, error)
	// Put commits all values atomically.
	Put(ctx context.Context, file string, values map[string]string) error
}

// CallbackLogRepository records advertiser callback attempts.
type CallbackLogRepository interface {
	Create(ctx context.Context, log *domain.CallbackLog) error
	ListByCredentials(ctx context.Context, credentialsToken string, limit int) ([]domain.CallbackLog, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
