package postgres

import (
	"context"
	"fmt"
)

// HealthCheck reports on the credentials and preference database.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping runs a trivial query through the pool.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.pool.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("postgres unreachable: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
