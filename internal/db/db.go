package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Config selects and locates the database.
type Config struct {
	Driver Dialect
	DSN    string
}

// Handle is an open, migrated database together with its dialect.
type Handle struct {
	*sql.DB
	Dialect Dialect
}

// Conn returns a DBTX that accepts `?` placeholders for the handle's dialect.
func (h *Handle) Conn() DBTX {
	return WithDialect(h.DB, h.Dialect)
}

// UnitOfWork returns a UnitOfWork bound to the handle.
func (h *Handle) UnitOfWork() *SQLUnitOfWork {
	return NewUnitOfWork(h.DB, h.Dialect)
}

// Open opens the configured database and runs migrations.
func Open(cfg Config) (*Handle, error) {
	switch cfg.Driver {
	case DialectSQLite, "":
		database, err := OpenDB(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: database, Dialect: DialectSQLite}, nil
	case DialectPostgres:
		database, err := openPostgres(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: database, Dialect: DialectPostgres}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses a single-connection in-memory database.
// Sets WAL mode and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every new connection would get its own empty in-memory database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func openPostgres(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres driver requires a DSN")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
