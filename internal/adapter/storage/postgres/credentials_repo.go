package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rewards-mediation-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrCredentialsNotFound is returned when updating unknown credentials.
var ErrCredentialsNotFound = errors.New("credentials not found")

// CredentialsRepo implements ports.CredentialsRepository.
type CredentialsRepo struct {
	pool Pool
}

// NewCredentialsRepo creates a new CredentialsRepo.
func NewCredentialsRepo(pool Pool) *CredentialsRepo {
	return &CredentialsRepo{pool: pool}
}

// Save upserts credentials. The creation time of existing rows is kept.
func (r *CredentialsRepo) Save(ctx context.Context, c *domain.Credentials) error {
	device, err := json.Marshal(c.Device)
	if err != nil {
		return fmt.Errorf("encode device: %w", err)
	}

	query := `INSERT INTO credentials (token, app_id, user_id, security_token_enc, device, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (token) DO UPDATE SET
			security_token_enc = EXCLUDED.security_token_enc,
			device = EXCLUDED.device,
			updated_at = EXCLUDED.updated_at`

	_, err = r.pool.Exec(ctx, query,
		c.Token, c.AppID, c.UserID, c.SecurityTokenEnc, device, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert credentials: %w", err)
	}
	return nil
}

// GetByToken fetches credentials by token.
func (r *CredentialsRepo) GetByToken(ctx context.Context, token string) (*domain.Credentials, error) {
	query := `SELECT token, app_id, user_id, security_token_enc, device, created_at, updated_at
		FROM credentials WHERE token = $1`

	c := &domain.Credentials{}
	var device []byte
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&c.Token, &c.AppID, &c.UserID, &c.SecurityTokenEnc, &device, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credentials by token: %w", err)
	}
	if len(device) > 0 {
		if err := json.Unmarshal(device, &c.Device); err != nil {
			return nil, fmt.Errorf("decode device: %w", err)
		}
	}
	return c, nil
}

// UpdateSecurityToken replaces the encrypted security token.
func (r *CredentialsRepo) UpdateSecurityToken(ctx context.Context, token string, securityTokenEnc string) error {
	query := `UPDATE credentials SET security_token_enc = $1, updated_at = now() WHERE token = $2`

	tag, err := r.pool.Exec(ctx, query, securityTokenEnc, token)
	if err != nil {
		return fmt.Errorf("update security token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCredentialsNotFound
	}
	return nil
}
