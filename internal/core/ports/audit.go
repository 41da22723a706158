package ports

import (
	"context"

	"github.com/learnhub/learnhub-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous persistence. Record
// must not block the request path; failures are logged, never surfaced.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// NoopRecorder discards all events. Useful in tests.
type NoopRecorder struct{}

func (NoopRecorder) Record(domain.AuditEvent) {}
