package postgres

import (
	"context"
	"database/sql"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, store_name, phone, address, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	if err := r.db.QueryRowContext(ctx, query, c.Name, c.StoreName, c.Phone, c.Address, time.Now()).Scan(&c.ID, &c.CreatedOn); err != nil {
		return persistErr("client insert", err)
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, name, store_name, phone, address, created_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.StoreName, &c.Phone, &c.Address, &c.CreatedOn)
	if err != nil {
		return nil, persistErr("client lookup", err)
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, store_name, phone, address, created_on FROM clients ORDER BY name`)
	if err != nil {
		return nil, persistErr("client list", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.StoreName, &c.Phone, &c.Address, &c.CreatedOn); err != nil {
			return nil, persistErr("client list", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Update rewrites metadata only. Loans and events reference the client by id,
// so a rename needs no cascade.
func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = $1, store_name = $2, phone = $3, address = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.StoreName, c.Phone, c.Address, c.ID)
	if err != nil {
		return persistErr("client update", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return persistErr("client update", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
