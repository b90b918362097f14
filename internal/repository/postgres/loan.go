package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `INSERT INTO loans (client_id, product_id, quantity, pending_quantity, unit_price, pending_total, note, idempotency_key, created_by, created_on)
	          VALUES ($1, $2, $3, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (idempotency_key) DO NOTHING
	          RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		loan.ClientID, loan.ProductID, loan.Quantity, loan.UnitPrice, loan.PendingTotal,
		loan.Note, loan.IdempotencyKey, loan.CreatedBy, time.Now()).Scan(&loan.ID, &loan.CreatedOn)
	if err == nil {
		loan.PendingQuantity = loan.Quantity
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return persistErr("loan insert", err)
	}

	// The key already landed on an earlier attempt; hand back that row so a
	// retried creation never grants the credit twice.
	existing, err := r.getByKey(ctx, loan.IdempotencyKey)
	if err != nil {
		return err
	}
	*loan = *existing
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	loan := &domain.Loan{}
	query := `SELECT id, client_id, product_id, quantity, pending_quantity, unit_price, pending_total, note, idempotency_key, created_by, created_on
	          FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loan.ID, &loan.ClientID, &loan.ProductID, &loan.Quantity, &loan.PendingQuantity,
		&loan.UnitPrice, &loan.PendingTotal, &loan.Note, &loan.IdempotencyKey, &loan.CreatedBy, &loan.CreatedOn)
	if err != nil {
		return nil, persistErr("loan lookup", err)
	}
	return loan, nil
}

func (r *loanRepository) getByKey(ctx context.Context, key string) (*domain.Loan, error) {
	loan := &domain.Loan{}
	query := `SELECT id, client_id, product_id, quantity, pending_quantity, unit_price, pending_total, note, idempotency_key, created_by, created_on
	          FROM loans WHERE idempotency_key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&loan.ID, &loan.ClientID, &loan.ProductID, &loan.Quantity, &loan.PendingQuantity,
		&loan.UnitPrice, &loan.PendingTotal, &loan.Note, &loan.IdempotencyKey, &loan.CreatedBy, &loan.CreatedOn)
	if err != nil {
		return nil, persistErr("loan lookup by key", err)
	}
	return loan, nil
}

func (r *loanRepository) ListByClient(ctx context.Context, clientID int32, openOnly bool) ([]domain.Loan, error) {
	query := `SELECT id, client_id, product_id, quantity, pending_quantity, unit_price, pending_total, note, idempotency_key, created_by, created_on
	          FROM loans WHERE client_id = $1`
	if openOnly {
		query += " AND pending_quantity > 0"
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, persistErr("loan list", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(&loan.ID, &loan.ClientID, &loan.ProductID, &loan.Quantity, &loan.PendingQuantity,
			&loan.UnitPrice, &loan.PendingTotal, &loan.Note, &loan.IdempotencyKey, &loan.CreatedBy, &loan.CreatedOn); err != nil {
			return nil, persistErr("loan list", err)
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func (r *loanRepository) RepairDriftedTotals(ctx context.Context) (int64, error) {
	query := `UPDATE loans SET pending_total = pending_quantity * unit_price
	          WHERE pending_total <> pending_quantity * unit_price`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, persistErr("loan total repair", err)
	}
	return result.RowsAffected()
}
