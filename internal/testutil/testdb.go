package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/syllabus/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestHandle wraps an in-memory test database in a db.Handle.
func NewTestHandle(t *testing.T) *db.Handle {
	t.Helper()
	return &db.Handle{DB: NewTestDB(t), Dialect: db.DialectSQLite}
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
