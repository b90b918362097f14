package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is an open consignment credit: a quantity of one product handed to a
// client at a fixed unit price. The pending pair is the only mutable state;
// the row is never deleted, a fully settled loan just sits at pending zero.
type Loan struct {
	ID              int32           `json:"id"`
	ClientID        int32           `json:"client_id"`
	ProductID       int32           `json:"product_id"`
	Quantity        int32           `json:"quantity"` // quantity granted at creation
	PendingQuantity int32           `json:"pending_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"` // immutable after creation
	PendingTotal    decimal.Decimal `json:"pending_total"`
	Note            string          `json:"note"`
	IdempotencyKey  string          `json:"-"`
	CreatedBy       string          `json:"created_by"`
	CreatedOn       time.Time       `json:"created_on"`
}

// Settled reports whether the loan reached its terminal state.
func (l *Loan) Settled() bool {
	return l.PendingQuantity == 0
}
