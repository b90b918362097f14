package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type stockRepository struct {
	db *sql.DB
}

func NewStockRepository(db *sql.DB) repository.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) ApplyMovement(ctx context.Context, mv *domain.StockMovement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return persistErr("movement begin", err)
	}
	defer tx.Rollback()

	// Movement first, balance second: a crash in between rolls both back, and
	// a retried request hits the idempotency key and re-applies nothing.
	now := time.Now()
	insert := `INSERT INTO stock_movements (warehouse_id, product_id, kind, quantity, reason, actor, idempotency_key, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	           ON CONFLICT (idempotency_key) DO NOTHING
	           RETURNING id, created_on`
	err = tx.QueryRowContext(ctx, insert, mv.WarehouseID, mv.ProductID, mv.Kind, mv.Quantity,
		mv.Reason, mv.Actor, mv.IdempotencyKey, now).Scan(&mv.ID, &mv.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		// Duplicate delivery of the same movement; hand back the original row
		// without touching the balance again.
		existing, err := r.getMovementByKey(ctx, mv.IdempotencyKey)
		if err != nil {
			return err
		}
		*mv = *existing
		return nil
	}
	if err != nil {
		return persistErr("movement insert", err)
	}

	switch mv.Kind {
	case domain.MovementKindIn:
		upsert := `INSERT INTO stock_balances (warehouse_id, product_id, quantity, updated_on)
		           VALUES ($1, $2, $3, $4)
		           ON CONFLICT (warehouse_id, product_id)
		           DO UPDATE SET quantity = stock_balances.quantity + EXCLUDED.quantity, updated_on = EXCLUDED.updated_on`
		if _, err := tx.ExecContext(ctx, upsert, mv.WarehouseID, mv.ProductID, mv.Quantity, now); err != nil {
			return persistErr("balance increment", err)
		}
	case domain.MovementKindOut:
		// Conditional decrement: no matching row (absent balance counts as
		// zero) or too little stock leaves everything untouched.
		update := `UPDATE stock_balances SET quantity = quantity - $3, updated_on = $4
		           WHERE warehouse_id = $1 AND product_id = $2 AND quantity >= $3`
		result, err := tx.ExecContext(ctx, update, mv.WarehouseID, mv.ProductID, mv.Quantity, now)
		if err != nil {
			return persistErr("balance decrement", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return persistErr("balance decrement", err)
		}
		if rows == 0 {
			return domain.ErrInsufficientStock
		}
	default:
		return &domain.ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown movement kind %q", mv.Kind)}
	}

	if err := tx.Commit(); err != nil {
		return persistErr("movement commit", err)
	}
	return nil
}

func (r *stockRepository) getMovementByKey(ctx context.Context, key string) (*domain.StockMovement, error) {
	mv := &domain.StockMovement{}
	query := `SELECT id, warehouse_id, product_id, kind, quantity, reason, actor, idempotency_key, created_on
	          FROM stock_movements WHERE idempotency_key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&mv.ID, &mv.WarehouseID, &mv.ProductID, &mv.Kind, &mv.Quantity, &mv.Reason, &mv.Actor, &mv.IdempotencyKey, &mv.CreatedOn)
	if err != nil {
		return nil, persistErr("movement lookup by key", err)
	}
	return mv, nil
}

func (r *stockRepository) GetBalance(ctx context.Context, warehouseID, productID int32) (int32, error) {
	var quantity int32
	query := `SELECT quantity FROM stock_balances WHERE warehouse_id = $1 AND product_id = $2`
	err := r.db.QueryRowContext(ctx, query, warehouseID, productID).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, persistErr("balance lookup", err)
	}
	return quantity, nil
}

func (r *stockRepository) ListBalances(ctx context.Context, warehouseID int32) ([]domain.StockBalance, error) {
	query := `SELECT warehouse_id, product_id, quantity, updated_on FROM stock_balances`
	args := []interface{}{}
	if warehouseID != 0 {
		query += " WHERE warehouse_id = $1"
		args = append(args, warehouseID)
	}
	query += " ORDER BY warehouse_id, product_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistErr("balance list", err)
	}
	defer rows.Close()

	var balances []domain.StockBalance
	for rows.Next() {
		var b domain.StockBalance
		if err := rows.Scan(&b.WarehouseID, &b.ProductID, &b.Quantity, &b.UpdatedOn); err != nil {
			return nil, persistErr("balance list", err)
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

func (r *stockRepository) ListMovements(ctx context.Context, f repository.MovementFilter) ([]domain.StockMovement, error) {
	query := `SELECT id, warehouse_id, product_id, kind, quantity, reason, actor, idempotency_key, created_on
	          FROM stock_movements WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if f.WarehouseID != 0 {
		query += fmt.Sprintf(" AND warehouse_id = $%d", argIdx)
		args = append(args, f.WarehouseID)
		argIdx++
	}
	if f.ProductID != 0 {
		query += fmt.Sprintf(" AND product_id = $%d", argIdx)
		args = append(args, f.ProductID)
		argIdx++
	}
	if !f.From.IsZero() {
		query += fmt.Sprintf(" AND created_on >= $%d", argIdx)
		args = append(args, f.From)
		argIdx++
	}
	if !f.To.IsZero() {
		query += fmt.Sprintf(" AND created_on < $%d", argIdx)
		args = append(args, f.To)
		argIdx++
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistErr("movement list", err)
	}
	defer rows.Close()

	var movements []domain.StockMovement
	for rows.Next() {
		var mv domain.StockMovement
		if err := rows.Scan(&mv.ID, &mv.WarehouseID, &mv.ProductID, &mv.Kind, &mv.Quantity,
			&mv.Reason, &mv.Actor, &mv.IdempotencyKey, &mv.CreatedOn); err != nil {
			return nil, persistErr("movement list", err)
		}
		movements = append(movements, mv)
	}
	return movements, rows.Err()
}

func (r *stockRepository) CreateWarehouse(ctx context.Context, w *domain.Warehouse) error {
	query := `INSERT INTO warehouses (name, location, created_on) VALUES ($1, $2, $3) RETURNING id, created_on`
	if err := r.db.QueryRowContext(ctx, query, w.Name, w.Location, time.Now()).Scan(&w.ID, &w.CreatedOn); err != nil {
		return persistErr("warehouse insert", err)
	}
	return nil
}

func (r *stockRepository) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, location, created_on FROM warehouses ORDER BY name`)
	if err != nil {
		return nil, persistErr("warehouse list", err)
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.CreatedOn); err != nil {
			return nil, persistErr("warehouse list", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}
