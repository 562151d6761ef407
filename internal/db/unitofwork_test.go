package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUnitOfWork(t *testing.T) (*db.SQLUnitOfWork, *db.Handle) {
	t.Helper()
	h, err := db.Open(db.Config{Driver: db.DialectSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { h.Close() })
	return h.UnitOfWork(), h
}

func insertUnitLog(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO unit_logs (id, started_at, created_at) VALUES (?, ?, ?)`,
		id, "2024-06-05T02:00:00Z", "2024-06-05T02:00:00Z")
	return err
}

func unitLogExists(t *testing.T, h *db.Handle, id string) bool {
	t.Helper()
	var n int
	err := h.Conn().QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM unit_logs WHERE id = ?`, id).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, h := openUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertUnitLog(ctx, tx, "u1")
	})
	require.NoError(t, err)

	assert.True(t, unitLogExists(t, h, "u1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, h := openUnitOfWork(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertUnitLog(ctx, tx, "u2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, unitLogExists(t, h, "u2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, h := openUnitOfWork(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertUnitLog(ctx, tx, "u3")
			panic("boom")
		})
	})

	assert.False(t, unitLogExists(t, h, "u3"), "row should not exist after panic rollback")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := db.Open(db.Config{Driver: "oracle", DSN: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_PostgresRequiresDSN(t *testing.T) {
	_, err := db.Open(db.Config{Driver: db.DialectPostgres})
	require.Error(t, err)
}
