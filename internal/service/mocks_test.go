package service

import (
	"context"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByClient(ctx context.Context, clientID int32, openOnly bool) ([]domain.Loan, error) {
	args := m.Called(ctx, clientID, openOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) RepairDriftedTotals(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettlementRepo
type MockSettlementRepo struct {
	mock.Mock
}

func (m *MockSettlementRepo) RecordSettlement(ctx context.Context, loanID, collectedQty, returnedQty int32, actor string) ([]domain.SettlementEvent, error) {
	args := m.Called(ctx, loanID, collectedQty, returnedQty, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementEvent), args.Error(1)
}
func (m *MockSettlementRepo) GetEventByID(ctx context.Context, id int32) (*domain.SettlementEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementEvent), args.Error(1)
}
func (m *MockSettlementRepo) ListEvents(ctx context.Context, f repository.EventFilter) ([]domain.SettlementEvent, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SettlementEvent), args.Error(1)
}

// MockReversalRepo
type MockReversalRepo struct {
	mock.Mock
}

func (m *MockReversalRepo) Reverse(ctx context.Context, eventID int32, actor string) (*domain.ReversalAudit, error) {
	args := m.Called(ctx, eventID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReversalAudit), args.Error(1)
}
func (m *MockReversalRepo) ListAudits(ctx context.Context, f repository.AuditFilter) ([]domain.ReversalAudit, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReversalAudit), args.Error(1)
}

// MockStockRepo
type MockStockRepo struct {
	mock.Mock
}

func (m *MockStockRepo) ApplyMovement(ctx context.Context, mv *domain.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}
func (m *MockStockRepo) GetBalance(ctx context.Context, warehouseID, productID int32) (int32, error) {
	args := m.Called(ctx, warehouseID, productID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockStockRepo) ListBalances(ctx context.Context, warehouseID int32) ([]domain.StockBalance, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}
func (m *MockStockRepo) ListMovements(ctx context.Context, f repository.MovementFilter) ([]domain.StockMovement, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}
func (m *MockStockRepo) CreateWarehouse(ctx context.Context, w *domain.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockStockRepo) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
