package ports

import (
	"context"

	"github.com/medroster/roster-system/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single audit event end-to-end (persist + metrics).
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts audit events for asynchronous processing. Recording an
// event must never block or fail the request that produced it.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}
