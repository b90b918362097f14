package repository

import (
	"context"
	"time"

	"koriel-backend/internal/domain"
)

// EventFilter narrows settlement event listings. Zero values mean "no filter".
type EventFilter struct {
	ClientID int32
	LoanID   int32
	Kind     domain.EventKind
	From     time.Time
	To       time.Time
}

// AuditFilter narrows reversal audit listings.
type AuditFilter struct {
	ClientID int32
	From     time.Time
	To       time.Time
}

// MovementFilter narrows stock movement listings.
type MovementFilter struct {
	WarehouseID int32
	ProductID   int32
	From        time.Time
	To          time.Time
}

type LoanRepository interface {
	// Create persists a new loan. The insert is keyed on loan.IdempotencyKey:
	// retrying with the same key returns the already-created row instead of
	// granting the credit twice.
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	ListByClient(ctx context.Context, clientID int32, openOnly bool) ([]domain.Loan, error)
	// RepairDriftedTotals recomputes pending_total = pending_quantity * unit_price
	// for every row where the invariant drifted, returning how many it touched.
	RepairDriftedTotals(ctx context.Context) (int64, error)
}

type SettlementRepository interface {
	// RecordSettlement applies a collection and/or return against a loan as one
	// atomic unit: a conditional decrement of the loan's pending pair guarded by
	// pending_quantity >= delta, plus the event appends. Either everything
	// lands or nothing does.
	RecordSettlement(ctx context.Context, loanID, collectedQty, returnedQty int32, actor string) ([]domain.SettlementEvent, error)
	GetEventByID(ctx context.Context, id int32) (*domain.SettlementEvent, error)
	ListEvents(ctx context.Context, f EventFilter) ([]domain.SettlementEvent, error)
}

type ReversalRepository interface {
	// Reverse undoes one settlement event: restores the loan's pending pair,
	// appends the audit copy and deletes the event, all in one transaction.
	// A second call for the same event fails with domain.ErrNotFound.
	Reverse(ctx context.Context, eventID int32, actor string) (*domain.ReversalAudit, error)
	ListAudits(ctx context.Context, f AuditFilter) ([]domain.ReversalAudit, error)
}

type StockRepository interface {
	// ApplyMovement appends the movement and shifts the cached balance in one
	// transaction. OUT movements use a conditional decrement guarded by
	// quantity >= delta; an absent balance row counts as zero stock.
	ApplyMovement(ctx context.Context, mv *domain.StockMovement) error
	GetBalance(ctx context.Context, warehouseID, productID int32) (int32, error)
	ListBalances(ctx context.Context, warehouseID int32) ([]domain.StockBalance, error)
	ListMovements(ctx context.Context, f MovementFilter) ([]domain.StockMovement, error)
	CreateWarehouse(ctx context.Context, w *domain.Warehouse) error
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
