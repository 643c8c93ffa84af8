// Package sqlite provides SQLite implementations of the repository interfaces.
// All queries go through the DB interface so the repositories run equally
// against a plain *sql.DB and the circuit-breaker wrapper.
package sqlite

import (
	"context"
	"database/sql"
)

// DB is the subset of *sql.DB the repositories need.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
