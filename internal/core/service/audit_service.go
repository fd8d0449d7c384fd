package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

// AuditService writes credential-lifecycle events to the durable audit trail.
// It sits behind the dispatcher's workers; a failed write is logged and
// reported but never retried.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

func (s *AuditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Record(ctx, event); err != nil {
		s.logger.Error().Err(err).
			Str("action", string(event.Action)).
			Str("account_id", event.AccountID).
			Msg("audit write failed")
		return err
	}
	return nil
}
