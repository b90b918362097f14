package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a master-data record. BasePrice is only a suggestion shown when
// capturing a new loan; each loan freezes its own unit price at creation.
type Product struct {
	ID        int32           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
	CreatedOn time.Time       `json:"created_on"`
}
