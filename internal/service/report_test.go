package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReportService_CollectionReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Totals only collection events", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		svc := NewReportService(settlementRepo, new(MockLoanRepo), new(MockClientRepo), new(MockProductRepo))

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		settlementRepo.On("ListEvents", ctx, repository.EventFilter{ClientID: 1, From: from, To: to}).Return([]domain.SettlementEvent{
			{ID: 20, Kind: domain.EventKindCollection, Amount: decimal.RequireFromString("8.00")},
			{ID: 21, Kind: domain.EventKindReturn, Amount: decimal.Zero},
			{ID: 22, Kind: domain.EventKindCollection, Amount: decimal.RequireFromString("3.50")},
		}, nil)

		report, err := svc.CollectionReport(ctx, 1, from, to)
		assert.NoError(t, err)
		assert.Len(t, report.Events, 3)
		assert.True(t, report.TotalCollected.Equal(decimal.RequireFromString("11.50")))
	})
}

func TestReportService_ExportCollectionsCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("Renders one row per event with names resolved", func(t *testing.T) {
		settlementRepo := new(MockSettlementRepo)
		clientRepo := new(MockClientRepo)
		prodRepo := new(MockProductRepo)
		svc := NewReportService(settlementRepo, new(MockLoanRepo), clientRepo, prodRepo)

		settlementRepo.On("ListEvents", ctx, repository.EventFilter{}).Return([]domain.SettlementEvent{
			{ID: 20, ClientID: 1, ProductID: 2, Kind: domain.EventKindCollection, Quantity: 4,
				Amount: decimal.RequireFromString("8.00"), Actor: "maria", CreatedOn: time.Now()},
		}, nil)
		clientRepo.On("List", ctx).Return([]domain.Client{{ID: 1, Name: "Dona Rosa"}}, nil)
		prodRepo.On("List", ctx).Return([]domain.Product{{ID: 2, Name: "Queso"}}, nil)

		data, err := svc.ExportCollectionsCSV(ctx, 0, time.Time{}, time.Time{})
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, 2)
		assert.Equal(t, "id,date,kind,client,product,quantity,amount,actor", lines[0])
		assert.Contains(t, lines[1], "Dona Rosa")
		assert.Contains(t, lines[1], "Queso")
		assert.Contains(t, lines[1], "8.00")
	})
}

func TestReportService_ClientStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists open loans with pending total", func(t *testing.T) {
		loanRepo := new(MockLoanRepo)
		clientRepo := new(MockClientRepo)
		prodRepo := new(MockProductRepo)
		svc := NewReportService(new(MockSettlementRepo), loanRepo, clientRepo, prodRepo)

		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1, Name: "Dona Rosa", StoreName: "Abarrotes Rosa"}, nil)
		loanRepo.On("ListByClient", ctx, int32(1), true).Return([]domain.Loan{
			{ID: 7, ProductID: 2, PendingQuantity: 5,
				UnitPrice: decimal.RequireFromString("2.00"), PendingTotal: decimal.RequireFromString("10.00")},
		}, nil)
		prodRepo.On("List", ctx).Return([]domain.Product{{ID: 2, Name: "Queso"}}, nil)

		statement, err := svc.ClientStatement(ctx, 1)
		assert.NoError(t, err)
		assert.Contains(t, statement, "Dona Rosa")
		assert.Contains(t, statement, "Abarrotes Rosa")
		assert.Contains(t, statement, "Queso x5 @ $2.00 = $10.00")
		assert.Contains(t, statement, "TOTAL PENDIENTE: $10.00")
	})

	t.Run("No open loans reads all settled", func(t *testing.T) {
		loanRepo := new(MockLoanRepo)
		clientRepo := new(MockClientRepo)
		prodRepo := new(MockProductRepo)
		svc := NewReportService(new(MockSettlementRepo), loanRepo, clientRepo, prodRepo)

		clientRepo.On("GetByID", ctx, int32(1)).Return(&domain.Client{ID: 1, Name: "Dona Rosa"}, nil)
		loanRepo.On("ListByClient", ctx, int32(1), true).Return([]domain.Loan{}, nil)
		prodRepo.On("List", ctx).Return([]domain.Product{}, nil)

		statement, err := svc.ClientStatement(ctx, 1)
		assert.NoError(t, err)
		assert.Contains(t, statement, "Sin saldo pendiente")
	})
}
