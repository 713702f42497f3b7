package postgres

import (
	"context"
	"fmt"

	"rewards-mediation-gateway/internal/core/domain"
)

// CallbackLogRepo implements ports.CallbackLogRepository.
type CallbackLogRepo struct {
	pool Pool
}

// NewCallbackLogRepo creates a new CallbackLogRepo.
func NewCallbackLogRepo(pool Pool) *CallbackLogRepo {
	return &CallbackLogRepo{pool: pool}
}

// Create inserts a callback attempt.
func (r *CallbackLogRepo) Create(ctx context.Context, l *domain.CallbackLog) error {
	query := `INSERT INTO callback_logs (id, kind, credentials_token, app_id, action_id, url, answer_received, http_status, status, last_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, string(l.Kind), l.CredentialsToken, l.AppID, l.ActionID, l.URL,
		l.AnswerReceived, l.HTTPStatus, string(l.Status), l.LastError, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert callback log: %w", err)
	}
	return nil
}

// ListByCredentials returns the newest attempts first.
func (r *CallbackLogRepo) ListByCredentials(ctx context.Context, credentialsToken string, limit int) ([]domain.CallbackLog, error) {
	query := `SELECT id, kind, credentials_token, app_id, action_id, url, answer_received, http_status, status, last_error, created_at
		FROM callback_logs WHERE credentials_token = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, credentialsToken, limit)
	if err != nil {
		return nil, fmt.Errorf("list callback logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.CallbackLog
	for rows.Next() {
		l := domain.CallbackLog{}
		var kind, status string
		err := rows.Scan(
			&l.ID, &kind, &l.CredentialsToken, &l.AppID, &l.ActionID, &l.URL,
			&l.AnswerReceived, &l.HTTPStatus, &status, &l.LastError, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan callback log row: %w", err)
		}
		l.Kind = domain.CallbackKind(kind)
		l.Status = domain.CallbackStatus(status)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate callback log rows: %w", err)
	}
	return logs, nil
}
