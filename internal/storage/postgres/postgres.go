// Package postgres implements core.UserStorage over a pgx connection
// pool. Collection mutations rely on the database's own atomicity; no
// in-process locking is layered on top.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault/internal/core"
)

const uniqueViolation = "23505"

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.UserStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool}
}

// isUniqueViolation reports whether err is a uniqueness-constraint error,
// which maps to core.ErrUserExists at the port boundary.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
