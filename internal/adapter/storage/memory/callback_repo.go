package memory

import (
	"context"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
)

// CallbackLogRepo is an in-memory ports.CallbackLogRepository.
type CallbackLogRepo struct {
	mu   sync.RWMutex
	logs []domain.CallbackLog
}

func NewCallbackLogRepo() *CallbackLogRepo {
	return &CallbackLogRepo{}
}

func (r *CallbackLogRepo) Create(ctx context.Context, log *domain.CallbackLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// ListByCredentials returns the newest entries first.
func (r *CallbackLogRepo) ListByCredentials(ctx context.Context, credentialsToken string, limit int) ([]domain.CallbackLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CallbackLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		if r.logs[i].CredentialsToken == credentialsToken {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}
