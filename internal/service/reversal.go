package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository"
)

type reversalService struct {
	reversalRepo repository.ReversalRepository
}

func NewReversalService(reversalRepo repository.ReversalRepository) ReversalService {
	return &reversalService{reversalRepo: reversalRepo}
}

func (s *reversalService) Reverse(ctx context.Context, eventID int32, actor string) (*domain.ReversalAudit, error) {
	if actor == "" {
		return nil, &domain.ValidationError{Field: "actor", Reason: "must not be empty"}
	}

	audit, err := s.reversalRepo.Reverse(ctx, eventID, actor)
	if err != nil {
		return nil, err
	}

	logger.Info("Settlement event reversed", "event_id", eventID, "loan_id", audit.LoanID,
		"quantity_restored", audit.QuantityRestored, "amount_reversed", audit.AmountReversed.String(), "actor", actor)
	return audit, nil
}

func (s *reversalService) ListAudits(ctx context.Context, f repository.AuditFilter) ([]domain.ReversalAudit, error) {
	return s.reversalRepo.ListAudits(ctx, f)
}
