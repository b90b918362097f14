package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type settlementRepository struct {
	db *sql.DB
}

func NewSettlementRepository(db *sql.DB) repository.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) RecordSettlement(ctx context.Context, loanID, collectedQty, returnedQty int32, actor string) ([]domain.SettlementEvent, error) {
	delta := collectedQty + returnedQty

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistErr("settlement begin", err)
	}
	defer tx.Rollback()

	// Conditional decrement. The guard on pending_quantity serializes racing
	// settlements against the same loan into one winner and one
	// ErrInsufficientPending; the balance can never go negative. The total is
	// recomputed from the new quantity rather than decremented, so it cannot
	// drift from pending_quantity * unit_price.
	var clientID, productID int32
	var unitPrice decimal.Decimal
	update := `UPDATE loans
	           SET pending_quantity = pending_quantity - $2,
	               pending_total = (pending_quantity - $2) * unit_price
	           WHERE id = $1 AND pending_quantity >= $2
	           RETURNING client_id, product_id, unit_price`
	err = tx.QueryRowContext(ctx, update, loanID, delta).Scan(&clientID, &productID, &unitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM loans WHERE id = $1)`, loanID).Scan(&exists); err != nil {
			return nil, persistErr("loan existence check", err)
		}
		if !exists {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientPending
	}
	if err != nil {
		return nil, persistErr("loan decrement", err)
	}

	now := time.Now()
	insert := `INSERT INTO settlement_events (loan_id, client_id, product_id, kind, quantity, amount, actor, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var events []domain.SettlementEvent
	if collectedQty > 0 {
		ev := domain.SettlementEvent{
			LoanID:    loanID,
			ClientID:  clientID,
			ProductID: productID,
			Kind:      domain.EventKindCollection,
			Quantity:  collectedQty,
			Amount:    unitPrice.Mul(decimal.NewFromInt32(collectedQty)),
			Actor:     actor,
			CreatedOn: now,
		}
		if err := tx.QueryRowContext(ctx, insert, ev.LoanID, ev.ClientID, ev.ProductID, ev.Kind, ev.Quantity, ev.Amount, ev.Actor, now).Scan(&ev.ID); err != nil {
			return nil, persistErr("collection event insert", err)
		}
		events = append(events, ev)
	}
	if returnedQty > 0 {
		ev := domain.SettlementEvent{
			LoanID:    loanID,
			ClientID:  clientID,
			ProductID: productID,
			Kind:      domain.EventKindReturn,
			Quantity:  returnedQty,
			Amount:    decimal.Zero,
			Actor:     actor,
			CreatedOn: now,
		}
		if err := tx.QueryRowContext(ctx, insert, ev.LoanID, ev.ClientID, ev.ProductID, ev.Kind, ev.Quantity, ev.Amount, ev.Actor, now).Scan(&ev.ID); err != nil {
			return nil, persistErr("return event insert", err)
		}
		events = append(events, ev)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistErr("settlement commit", err)
	}
	return events, nil
}

func (r *settlementRepository) GetEventByID(ctx context.Context, id int32) (*domain.SettlementEvent, error) {
	ev := &domain.SettlementEvent{}
	query := `SELECT id, loan_id, client_id, product_id, kind, quantity, amount, actor, created_on
	          FROM settlement_events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ev.ID, &ev.LoanID, &ev.ClientID, &ev.ProductID, &ev.Kind, &ev.Quantity, &ev.Amount, &ev.Actor, &ev.CreatedOn)
	if err != nil {
		return nil, persistErr("event lookup", err)
	}
	return ev, nil
}

func (r *settlementRepository) ListEvents(ctx context.Context, f repository.EventFilter) ([]domain.SettlementEvent, error) {
	query := `SELECT id, loan_id, client_id, product_id, kind, quantity, amount, actor, created_on
	          FROM settlement_events WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if f.ClientID != 0 {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, f.ClientID)
		argIdx++
	}
	if f.LoanID != 0 {
		query += fmt.Sprintf(" AND loan_id = $%d", argIdx)
		args = append(args, f.LoanID)
		argIdx++
	}
	if f.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)
		args = append(args, f.Kind)
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
		return nil, persistErr("event list", err)
	}
	defer rows.Close()

	var events []domain.SettlementEvent
	for rows.Next() {
		var ev domain.SettlementEvent
		if err := rows.Scan(&ev.ID, &ev.LoanID, &ev.ClientID, &ev.ProductID, &ev.Kind, &ev.Quantity, &ev.Amount, &ev.Actor, &ev.CreatedOn); err != nil {
			return nil, persistErr("event list", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
