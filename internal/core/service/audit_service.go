package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medroster/roster-system/internal/core/domain"
	"github.com/medroster/roster-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event. The trail is append-only; a failed
// insert is surfaced to the caller (the dispatcher logs it) but never blocks
// or fails the request that produced the event.
func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	// Email is optional: rejected tokens carry no trusted account identity.
	if event.Action == "" {
		return domain.NewValidationError("audit event requires an action")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}

	s.log.Debug().
		Str("action", string(event.Action)).
		Str("email", event.Email).
		Msg("audit event recorded")
	return nil
}
