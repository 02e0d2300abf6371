package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
	"github.com/lib/pq"
)

const pgForeignKeyViolation = "23503"

type scanner interface {
	Scan(dest ...interface{}) error
}

// translateWriteError maps a foreign-key violation on insert/update to
// storage.ErrInvalidReference and wraps everything else with op.
func translateWriteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// translateDeleteError maps a foreign-key violation on delete to
// storage.ErrStillReferenced.
func translateDeleteError(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrStillReferenced)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}

// queryOne runs a single-row query and treats sql.ErrNoRows as an absent
// value (nil, nil).
func queryOne[T any](row *sql.Row, scan func(scanner) (*T, error)) (*T, error) {
	v, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

// queryAll drains rows through scan. The result is never nil.
func queryAll[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// deleted reports whether an exec removed at least one row.
func deleted(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
