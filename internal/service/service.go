package service

import (
	"context"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// NewClientInput and NewProductInput carry the "quick create" payloads: the
// operator can register a brand-new client or product in the same action that
// grants the loan, as the capture screen allows.
type NewClientInput struct {
	Name      string
	StoreName string
	Phone     string
	Address   string
}

type NewProductInput struct {
	Name      string
	Category  string
	BasePrice decimal.Decimal
}

type CreateLoanInput struct {
	ClientID       int32
	ProductID      int32
	NewClient      *NewClientInput  // used instead of ClientID when set
	NewProduct     *NewProductInput // used instead of ProductID when set
	Quantity       int32
	UnitPrice      decimal.Decimal
	Note           string
	Actor          string
	IdempotencyKey string // generated when empty; lets callers retry safely
}

type ApplyMovementInput struct {
	WarehouseID    int32
	ProductID      int32
	Kind           domain.MovementKind
	Quantity       int32
	Reason         string
	Actor          string
	IdempotencyKey string
}

// ClientExposureSummary is the risk signal shown before granting more credit.
// It never blocks a new loan; the operator decides.
type ClientExposureSummary struct {
	Client    *domain.Client  `json:"client"`
	OpenLoans []domain.Loan   `json:"open_loans"`
	Exposure  decimal.Decimal `json:"exposure"`
}

// CollectionReport is a read-only projection over the settlement history.
type CollectionReport struct {
	Events         []domain.SettlementEvent `json:"events"`
	TotalCollected decimal.Decimal          `json:"total_collected"`
	From           time.Time                `json:"from"`
	To             time.Time                `json:"to"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, string, *domain.User, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, error)
	CreateOperator(ctx context.Context, username, name, password string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
}

type LoanService interface {
	CreateLoan(ctx context.Context, in CreateLoanInput) (*domain.Loan, error)
	GetLoan(ctx context.Context, id int32) (*domain.Loan, error)
	ListLoans(ctx context.Context, clientID int32, openOnly bool) ([]domain.Loan, error)
	ClientExposure(ctx context.Context, clientID int32) (*ClientExposureSummary, error)
}

type SettlementService interface {
	Settle(ctx context.Context, loanID, collectedQty, returnedQty int32, actor string) ([]domain.SettlementEvent, error)
	SettleAll(ctx context.Context, loanID int32, actor string) ([]domain.SettlementEvent, error)
	ReturnAll(ctx context.Context, loanID int32, actor string) ([]domain.SettlementEvent, error)
	ListEvents(ctx context.Context, f repository.EventFilter) ([]domain.SettlementEvent, error)
}

type ReversalService interface {
	Reverse(ctx context.Context, eventID int32, actor string) (*domain.ReversalAudit, error)
	ListAudits(ctx context.Context, f repository.AuditFilter) ([]domain.ReversalAudit, error)
}

type StockService interface {
	ApplyMovement(ctx context.Context, in ApplyMovementInput) (*domain.StockMovement, error)
	GetBalance(ctx context.Context, warehouseID, productID int32) (int32, error)
	ListBalances(ctx context.Context, warehouseID int32) ([]domain.StockBalance, error)
	ListMovements(ctx context.Context, f repository.MovementFilter) ([]domain.StockMovement, error)
	CreateWarehouse(ctx context.Context, name, location string) (*domain.Warehouse, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}

type MasterDataService interface {
	CreateClient(ctx context.Context, in NewClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int32, in NewClientInput) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	CreateProduct(ctx context.Context, in NewProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int32, in NewProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int32) (*domain.Product, error)
}

type ReportService interface {
	CollectionReport(ctx context.Context, clientID int32, from, to time.Time) (*CollectionReport, error)
	ExportCollectionsCSV(ctx context.Context, clientID int32, from, to time.Time) ([]byte, error)
	ClientStatement(ctx context.Context, clientID int32) (string, error)
}
