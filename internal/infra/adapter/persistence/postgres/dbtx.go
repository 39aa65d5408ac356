package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the query surface the repositories need.
// Both *sql.DB and *circuitbreaker.DBCircuitBreaker satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func affectOne(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: no rows affected", op)
	}
	return nil
}
