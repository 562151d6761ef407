package db

import (
	"context"
	"database/sql"
)

// DBTX is the common interface satisfied by *sql.DB, *sql.Tx and the
// dialect-rebinding wrapper. Repositories depend on it so the same code runs
// inside and outside a UnitOfWork and against either backend.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = rebindDBTX{}
)
