// Package postgres provides PostgreSQL implementations of the repository
// interfaces, mirroring the SQLite adapter. Placeholders use the $n form and
// inserts return the generated identity via RETURNING.
package postgres

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
