package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PreferenceRepo implements ports.PreferenceStore.
type PreferenceRepo struct {
	pool Pool
}

// NewPreferenceRepo creates a new PreferenceRepo.
func NewPreferenceRepo(pool Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// Get returns a stored value.
func (r *PreferenceRepo) Get(ctx context.Context, file string, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM preferences WHERE file = $1 AND key = $2`, file, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	return value, true, nil
}

// Put writes all values in one transaction.
func (r *PreferenceRepo) Put(ctx context.Context, file string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin preferences tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `INSERT INTO preferences (file, key, value, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (file, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	for k, v := range values {
		if _, err := tx.Exec(ctx, query, file, k, v); err != nil {
			return fmt.Errorf("put preference %q: %w", k, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit preferences tx: %w", err)
	}
	return nil
}
