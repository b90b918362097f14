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

type reversalRepository struct {
	db *sql.DB
}

func NewReversalRepository(db *sql.DB) repository.ReversalRepository {
	return &reversalRepository{db: db}
}

func (r *reversalRepository) Reverse(ctx context.Context, eventID int32, actor string) (*domain.ReversalAudit, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, persistErr("reversal begin", err)
	}
	defer tx.Rollback()

	// Lock the event row for the rest of the transaction. A concurrent
	// reversal of the same event blocks here and then sees no row, so the
	// second attempt always fails with ErrNotFound instead of restoring twice.
	ev := domain.SettlementEvent{}
	sel := `SELECT id, loan_id, client_id, product_id, kind, quantity, amount, actor, created_on
	        FROM settlement_events WHERE id = $1 FOR UPDATE`
	err = tx.QueryRowContext(ctx, sel, eventID).Scan(
		&ev.ID, &ev.LoanID, &ev.ClientID, &ev.ProductID, &ev.Kind, &ev.Quantity, &ev.Amount, &ev.Actor, &ev.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, persistErr("event lock", err)
	}

	update := `UPDATE loans
	           SET pending_quantity = pending_quantity + $2,
	               pending_total = (pending_quantity + $2) * unit_price
	           WHERE id = $1`
	result, err := tx.ExecContext(ctx, update, ev.LoanID, ev.Quantity)
	if err != nil {
		return nil, persistErr("loan restore", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, persistErr("loan restore", err)
	}
	if rows == 0 {
		return nil, domain.ErrOrphanEvent
	}

	audit := &domain.ReversalAudit{
		EventID:          ev.ID,
		LoanID:           ev.LoanID,
		ClientID:         ev.ClientID,
		ProductID:        ev.ProductID,
		OriginalKind:     ev.Kind,
		QuantityRestored: ev.Quantity,
		AmountReversed:   ev.Amount,
		Actor:            actor,
		CreatedOn:        time.Now(),
	}
	insert := `INSERT INTO reversal_audits (event_id, loan_id, client_id, product_id, original_kind, quantity_restored, amount_reversed, actor, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := tx.QueryRowContext(ctx, insert, audit.EventID, audit.LoanID, audit.ClientID, audit.ProductID,
		audit.OriginalKind, audit.QuantityRestored, audit.AmountReversed, audit.Actor, audit.CreatedOn).Scan(&audit.ID); err != nil {
		return nil, persistErr("audit insert", err)
	}

	// The audit copy is in place; only now does the event disappear.
	if _, err := tx.ExecContext(ctx, `DELETE FROM settlement_events WHERE id = $1`, eventID); err != nil {
		return nil, persistErr("event delete", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, persistErr("reversal commit", err)
	}
	return audit, nil
}

func (r *reversalRepository) ListAudits(ctx context.Context, f repository.AuditFilter) ([]domain.ReversalAudit, error) {
	query := `SELECT id, event_id, loan_id, client_id, product_id, original_kind, quantity_restored, amount_reversed, actor, created_on
	          FROM reversal_audits WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if f.ClientID != 0 {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)
		args = append(args, f.ClientID)
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
		return nil, persistErr("audit list", err)
	}
	defer rows.Close()

	var audits []domain.ReversalAudit
	for rows.Next() {
		var a domain.ReversalAudit
		if err := rows.Scan(&a.ID, &a.EventID, &a.LoanID, &a.ClientID, &a.ProductID,
			&a.OriginalKind, &a.QuantityRestored, &a.AmountReversed, &a.Actor, &a.CreatedOn); err != nil {
			return nil, persistErr("audit list", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}
