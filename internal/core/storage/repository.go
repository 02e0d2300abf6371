package storage

import (
	"context"
	"database/sql"
	"errors"
)

var (
	// ErrInvalidReference is returned when a write references a row that does
	// not exist (e.g. a trip for an unknown driver).
	ErrInvalidReference = errors.New("referenced row does not exist")

	// ErrStillReferenced is returned when a delete is blocked by rows that
	// reference the target (e.g. a driver that still has trips).
	ErrStillReferenced = errors.New("row is still referenced")
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx.
// Stores run their statements against a DBTX so the same code serves
// pooled single statements and request-scoped transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
