package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository"
)

type settlementService struct {
	settlementRepo repository.SettlementRepository
	loanRepo       repository.LoanRepository
}

func NewSettlementService(
	settlementRepo repository.SettlementRepository,
	loanRepo repository.LoanRepository,
) SettlementService {
	return &settlementService{
		settlementRepo: settlementRepo,
		loanRepo:       loanRepo,
	}
}

func (s *settlementService) Settle(ctx context.Context, loanID, collectedQty, returnedQty int32, actor string) ([]domain.SettlementEvent, error) {
	if collectedQty < 0 {
		return nil, &domain.ValidationError{Field: "collected_qty", Reason: "must not be negative"}
	}
	if returnedQty < 0 {
		return nil, &domain.ValidationError{Field: "returned_qty", Reason: "must not be negative"}
	}
	if actor == "" {
		return nil, &domain.ValidationError{Field: "actor", Reason: "must not be empty"}
	}
	if collectedQty == 0 && returnedQty == 0 {
		return nil, domain.ErrNoOp
	}

	events, err := s.settlementRepo.RecordSettlement(ctx, loanID, collectedQty, returnedQty, actor)
	if err != nil {
		return nil, err
	}

	logger.Info("Settlement recorded", "loan_id", loanID,
		"collected_qty", collectedQty, "returned_qty", returnedQty, "events", len(events), "actor", actor)
	return events, nil
}

// SettleAll collects the loan's full pending quantity, for the client who pays
// everything in one visit. It produces exactly the state that Settle with the
// full pending quantity would.
func (s *settlementService) SettleAll(ctx context.Context, loanID int32, actor string) ([]domain.SettlementEvent, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return s.Settle(ctx, loanID, loan.PendingQuantity, 0, actor)
}

// ReturnAll hands back the loan's full pending quantity unsold.
func (s *settlementService) ReturnAll(ctx context.Context, loanID int32, actor string) ([]domain.SettlementEvent, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return s.Settle(ctx, loanID, 0, loan.PendingQuantity, actor)
}

func (s *settlementService) ListEvents(ctx context.Context, f repository.EventFilter) ([]domain.SettlementEvent, error) {
	return s.settlementRepo.ListEvents(ctx, f)
}
