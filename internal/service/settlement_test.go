package service

import (
	"context"
	"testing"

	"koriel-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettlementService_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial settle produces both events", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		svc := NewSettlementService(settlementRepo, new(MockLoanRepo))

		settlementRepo.On("RecordSettlement", ctx, int32(7), int32(4), int32(1), "maria").Return([]domain.SettlementEvent{
			{ID: 20, LoanID: 7, Kind: domain.EventKindCollection, Quantity: 4, Amount: decimal.RequireFromString("8.00")},
			{ID: 21, LoanID: 7, Kind: domain.EventKindReturn, Quantity: 1, Amount: decimal.Zero},
		}, nil)

		events, err := svc.Settle(ctx, 7, 4, 1, "maria")
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		settlementRepo.AssertExpectations(t)
	})

	t.Run("Both zero is a no-op", func(t *testing.T) {
		svc := NewSettlementService(new(MockSettlementRepo), new(MockLoanRepo))

		_, err := svc.Settle(ctx, 7, 0, 0, "maria")
		assert.ErrorIs(t, err, domain.ErrNoOp)
	})

	t.Run("Negative quantity is rejected before touching storage", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		svc := NewSettlementService(settlementRepo, new(MockLoanRepo))

		_, err := svc.Settle(ctx, 7, -1, 0, "maria")
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		settlementRepo.AssertNotCalled(t, "RecordSettlement")
	})

	t.Run("Insufficient pending passes through", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		svc := NewSettlementService(settlementRepo, new(MockLoanRepo))

		settlementRepo.On("RecordSettlement", ctx, int32(7), int32(50), int32(0), "maria").
			Return(nil, domain.ErrInsufficientPending)

		_, err := svc.Settle(ctx, 7, 50, 0, "maria")
		assert.ErrorIs(t, err, domain.ErrInsufficientPending)
	})
}

func TestSettlementService_SettleAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Collects the full pending quantity", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		loanRepo := new(MockLoanRepo)
		svc := NewSettlementService(settlementRepo, loanRepo)

		loanRepo.On("GetByID", ctx, int32(7)).Return(&domain.Loan{ID: 7, PendingQuantity: 5}, nil)
		settlementRepo.On("RecordSettlement", ctx, int32(7), int32(5), int32(0), "maria").Return([]domain.SettlementEvent{
			{ID: 22, LoanID: 7, Kind: domain.EventKindCollection, Quantity: 5},
		}, nil)

		events, err := svc.SettleAll(ctx, 7, "maria")
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		settlementRepo.AssertExpectations(t)
	})

	t.Run("Already settled loan is a no-op", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		loanRepo := new(MockLoanRepo)
		svc := NewSettlementService(settlementRepo, loanRepo)

		loanRepo.On("GetByID", ctx, int32(7)).Return(&domain.Loan{ID: 7, PendingQuantity: 0}, nil)

		_, err := svc.SettleAll(ctx, 7, "maria")
		assert.ErrorIs(t, err, domain.ErrNoOp)
		settlementRepo.AssertNotCalled(t, "RecordSettlement")
	})
}

func TestSettlementService_ReturnAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the full pending quantity unsold", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		loanRepo := new(MockLoanRepo)
		svc := NewSettlementService(settlementRepo, loanRepo)

		loanRepo.On("GetByID", ctx, int32(7)).Return(&domain.Loan{ID: 7, PendingQuantity: 5}, nil)
		settlementRepo.On("RecordSettlement", ctx, int32(7), int32(0), int32(5), "maria").Return([]domain.SettlementEvent{
			{ID: 23, LoanID: 7, Kind: domain.EventKindReturn, Quantity: 5, Amount: decimal.Zero},
		}, nil)

		events, err := svc.ReturnAll(ctx, 7, "maria")
		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.True(t, events[0].Amount.IsZero())
	})

	t.Run("Unknown loan surfaces not found", func(t *testing.T) {
		loanRepo := new(MockLoanRepo)
		svc := NewSettlementService(new(MockSettlementRepo), loanRepo)

		loanRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.ReturnAll(ctx, 99, "maria")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
