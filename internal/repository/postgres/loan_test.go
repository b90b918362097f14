package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"koriel-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoanRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		loan := &domain.Loan{
			ClientID:       1,
			ProductID:      2,
			Quantity:       10,
			UnitPrice:      decimal.RequireFromString("2.00"),
			PendingTotal:   decimal.RequireFromString("20.00"),
			Note:           "first delivery",
			IdempotencyKey: "key-1",
			CreatedBy:      "maria",
		}

		mock.ExpectQuery("INSERT INTO loans").
			WithArgs(loan.ClientID, loan.ProductID, loan.Quantity, loan.UnitPrice, loan.PendingTotal,
				loan.Note, loan.IdempotencyKey, loan.CreatedBy, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(7, time.Now()))

		err := repo.Create(ctx, loan)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), loan.ID)
		assert.Equal(t, int32(10), loan.PendingQuantity)
	})

	t.Run("Duplicate idempotency key returns existing row", func(t *testing.T) {
		loan := &domain.Loan{
			ClientID:       1,
			ProductID:      2,
			Quantity:       10,
			UnitPrice:      decimal.RequireFromString("2.00"),
			PendingTotal:   decimal.RequireFromString("20.00"),
			IdempotencyKey: "key-1",
			CreatedBy:      "maria",
		}

		// ON CONFLICT DO NOTHING yields no row on the duplicate attempt.
		mock.ExpectQuery("INSERT INTO loans").
			WithArgs(loan.ClientID, loan.ProductID, loan.Quantity, loan.UnitPrice, loan.PendingTotal,
				loan.Note, loan.IdempotencyKey, loan.CreatedBy, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}))

		existing := sqlmock.NewRows([]string{"id", "client_id", "product_id", "quantity", "pending_quantity", "unit_price", "pending_total", "note", "idempotency_key", "created_by", "created_on"}).
			AddRow(7, 1, 2, 10, 10, "2.00", "20.00", "first delivery", "key-1", "maria", time.Now())
		mock.ExpectQuery("SELECT (.+) FROM loans WHERE idempotency_key = \\$1").
			WithArgs("key-1").
			WillReturnRows(existing)

		err := repo.Create(ctx, loan)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), loan.ID)
		assert.Equal(t, "first delivery", loan.Note)
	})
}

func TestLoanRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "client_id", "product_id", "quantity", "pending_quantity", "unit_price", "pending_total", "note", "idempotency_key", "created_by", "created_on"}).
			AddRow(7, 1, 2, 10, 5, "2.00", "10.00", "", "key-1", "maria", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM loans WHERE id = \\$1").
			WithArgs(int32(7)).
			WillReturnRows(rows)

		loan, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), loan.PendingQuantity)
		assert.True(t, loan.PendingTotal.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM loans WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Transport failure wraps as persistence error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM loans WHERE id = \\$1").
			WithArgs(int32(7)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByID(ctx, 7)
		var perr *domain.PersistenceError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestLoanRepository_ListByClient(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Open only filters settled loans", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "client_id", "product_id", "quantity", "pending_quantity", "unit_price", "pending_total", "note", "idempotency_key", "created_by", "created_on"}).
			AddRow(7, 1, 2, 10, 5, "2.00", "10.00", "", "key-1", "maria", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM loans WHERE client_id = \\$1 AND pending_quantity > 0").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		loans, err := repo.ListByClient(ctx, 1, true)
		assert.NoError(t, err)
		assert.Len(t, loans, 1)
	})
}

func TestLoanRepository_RepairDriftedTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Reports repaired row count", func(t *testing.T) {
		mock.ExpectExec("UPDATE loans SET pending_total = pending_quantity \\* unit_price").
			WillReturnResult(sqlmock.NewResult(0, 3))

		repaired, err := repo.RepairDriftedTotals(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), repaired)
	})
}
