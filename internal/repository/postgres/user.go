package postgres

import (
	"context"
	"database/sql"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (username, name, password_hash, role, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	if err := r.db.QueryRowContext(ctx, query, u.Username, u.Name, u.PasswordHash, u.Role, time.Now()).Scan(&u.ID, &u.CreatedOn); err != nil {
		return persistErr("user insert", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, name, password_hash, role, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedOn)
	if err != nil {
		return nil, persistErr("user lookup", err)
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, name, password_hash, role, created_on FROM users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedOn)
	if err != nil {
		return nil, persistErr("user lookup", err)
	}
	return u, nil
}
