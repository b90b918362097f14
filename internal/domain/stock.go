package domain

import "time"

type MovementKind string

const (
	MovementKindIn  MovementKind = "IN"
	MovementKindOut MovementKind = "OUT"
)

type Warehouse struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedOn time.Time `json:"created_on"`
}

// StockMovement is an append-only record of a physical entry or exit.
type StockMovement struct {
	ID             int32        `json:"id"`
	WarehouseID    int32        `json:"warehouse_id"`
	ProductID      int32        `json:"product_id"`
	Kind           MovementKind `json:"kind"`
	Quantity       int32        `json:"quantity"`
	Reason         string       `json:"reason"`
	Actor          string       `json:"actor"`
	IdempotencyKey string       `json:"-"`
	CreatedOn      time.Time    `json:"created_on"`
}

// StockBalance is the cached on-hand quantity per (warehouse, product).
// Callers never set it directly; it only moves by applying a movement delta,
// and the store keeps it from ever going negative.
type StockBalance struct {
	WarehouseID int32     `json:"warehouse_id"`
	ProductID   int32     `json:"product_id"`
	Quantity    int32     `json:"quantity"`
	UpdatedOn   time.Time `json:"updated_on"`
}
