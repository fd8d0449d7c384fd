package ports

import (
	"context"

	"github.com/velora/identity-service/internal/core/domain"
)

// AuditRecorder persists a single audit trail entry.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository is the durable store behind the audit trail.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous recording. Submit must not
// block the caller beyond buffering: auditing is fire-and-forget and never
// affects the outcome of the request that produced the event.
type AuditSink interface {
	Submit(event domain.AuditEvent)
}
