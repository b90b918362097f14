package postgres

import (
	"database/sql"

	"koriel-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.LoanRepository
	repository.SettlementRepository
	repository.ReversalRepository
	repository.StockRepository
	repository.ClientRepository
	repository.ProductRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		LoanRepository:       NewLoanRepository(db),
		SettlementRepository: NewSettlementRepository(db),
		ReversalRepository:   NewReversalRepository(db),
		StockRepository:      NewStockRepository(db),
		ClientRepository:     NewClientRepository(db),
		ProductRepository:    NewProductRepository(db),
		UserRepository:       NewUserRepository(db),
	}
}
