package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent and
// valid for both SQLite and PostgreSQL, so the full list is re-run on open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per teacher and calendar day of the scheduling feed. Slot
	// lists and schedule entries are stored as JSON documents.
	`CREATE TABLE IF NOT EXISTS slot_assignments (
		id                 TEXT PRIMARY KEY,
		teacher_id         TEXT NOT NULL DEFAULT '',
		day_key            TEXT NOT NULL,
		scheduled_slot_ids TEXT NOT NULL DEFAULT '[]',
		slots              TEXT NOT NULL DEFAULT '[]',
		schedule_entries   TEXT NOT NULL DEFAULT '[]',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL,
		UNIQUE (teacher_id, day_key)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_slot_assignments_day ON slot_assignments(day_key)`,

	`CREATE TABLE IF NOT EXISTS unit_logs (
		id         TEXT PRIMARY KEY,
		teacher_id TEXT NOT NULL DEFAULT '',
		subject    TEXT NOT NULL DEFAULT '',
		title      TEXT NOT NULL DEFAULT '',
		started_at TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT '',
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_unit_logs_started ON unit_logs(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_unit_logs_teacher_started ON unit_logs(teacher_id, started_at)`,
}
