package memory

import (
	"context"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
)

// AuditRepo is an in-memory ports.AuditRepository.
type AuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// Entries returns a snapshot of all recorded entries.
func (r *AuditRepo) Entries() []domain.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}
