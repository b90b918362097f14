package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventKindCollection EventKind = "COLLECTION"
	EventKindReturn     EventKind = "RETURN"
)

// SettlementEvent records that part of a loan's outstanding quantity was
// collected (paid for) or returned. Amount is quantity * unit price for
// collections and always zero for returns. The reversal engine is the only
// code allowed to delete one, and only after copying it into a ReversalAudit.
type SettlementEvent struct {
	ID        int32           `json:"id"`
	LoanID    int32           `json:"loan_id"`
	ClientID  int32           `json:"client_id"`
	ProductID int32           `json:"product_id"`
	Kind      EventKind       `json:"kind"`
	Quantity  int32           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Actor     string          `json:"actor"`
	CreatedOn time.Time       `json:"created_on"`
}
