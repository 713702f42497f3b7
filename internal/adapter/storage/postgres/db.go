package postgres

import (
	"context"
	"fmt"

	"rewards-mediation-gateway/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a PostgreSQL connection pool using pgx.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("dbname", cfg.DBName).
		Int32("max_conns", cfg.MaxConns).
		Msg("PostgreSQL connection pool established")

	return pool, nil
}

// schema creates the tables the repositories need.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS credentials (
		token              TEXT PRIMARY KEY,
		app_id             TEXT NOT NULL,
		user_id            TEXT NOT NULL,
		security_token_enc TEXT NOT NULL DEFAULT '',
		device             JSONB NOT NULL DEFAULT '{}',
		created_at         TIMESTAMPTZ NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		file       TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (file, key)
	)`,
	`CREATE TABLE IF NOT EXISTS callback_logs (
		id                UUID PRIMARY KEY,
		kind              TEXT NOT NULL,
		credentials_token TEXT NOT NULL,
		app_id            TEXT NOT NULL,
		action_id         TEXT NOT NULL DEFAULT '',
		url               TEXT NOT NULL,
		answer_received   BOOLEAN NOT NULL,
		http_status       INTEGER,
		status            TEXT NOT NULL,
		last_error        TEXT,
		created_at        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS callback_logs_credentials_idx ON callback_logs (credentials_token, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id                UUID PRIMARY KEY,
		credentials_token TEXT,
		action            TEXT NOT NULL,
		resource_type     TEXT NOT NULL,
		resource_id       TEXT NOT NULL DEFAULT '',
		details           TEXT NOT NULL DEFAULT '',
		ip_address        TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates missing tables.
func Migrate(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
