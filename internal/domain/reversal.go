package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReversalAudit is the append-only trace left behind when a settlement event
// is undone. It carries a full copy of the deleted event so the history stays
// reconstructible; audit rows are never mutated or deleted.
type ReversalAudit struct {
	ID               int32           `json:"id"`
	EventID          int32           `json:"event_id"`
	LoanID           int32           `json:"loan_id"`
	ClientID         int32           `json:"client_id"`
	ProductID        int32           `json:"product_id"`
	OriginalKind     EventKind       `json:"original_kind"`
	QuantityRestored int32           `json:"quantity_restored"`
	AmountReversed   decimal.Decimal `json:"amount_reversed"`
	Actor            string          `json:"actor"`
	CreatedOn        time.Time       `json:"created_on"`
}
