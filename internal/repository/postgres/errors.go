package postgres

import (
	"database/sql"
	"errors"

	"koriel-backend/internal/domain"
)

// persistErr classifies a database/sql failure: missing rows become
// domain.ErrNotFound, everything else is wrapped as a PersistenceError so the
// caller knows the outcome of the write is unknown.
func persistErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
