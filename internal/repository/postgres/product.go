package postgres

import (
	"context"
	"database/sql"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, category, base_price, created_on) VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	if err := r.db.QueryRowContext(ctx, query, p.Name, p.Category, p.BasePrice, time.Now()).Scan(&p.ID, &p.CreatedOn); err != nil {
		return persistErr("product insert", err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT id, name, category, base_price, created_on FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.BasePrice, &p.CreatedOn)
	if err != nil {
		return nil, persistErr("product lookup", err)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, category, base_price, created_on FROM products ORDER BY name`)
	if err != nil {
		return nil, persistErr("product list", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.BasePrice, &p.CreatedOn); err != nil {
			return nil, persistErr("product list", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update rewrites metadata only; existing loans keep the unit price they froze
// at creation, so changing base_price never rewrites history.
func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name = $1, category = $2, base_price = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.BasePrice, p.ID)
	if err != nil {
		return persistErr("product update", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return persistErr("product update", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
