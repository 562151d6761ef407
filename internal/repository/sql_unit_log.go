package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/domain"
)

// SQLUnitLogRepo implements UnitLogRepo for SQLite and PostgreSQL.
type SQLUnitLogRepo struct {
	db db.DBTX
}

// NewSQLUnitLogRepo creates a new SQLUnitLogRepo. conn must accept `?`
// placeholders (see db.WithDialect).
func NewSQLUnitLogRepo(conn db.DBTX) *SQLUnitLogRepo {
	return &SQLUnitLogRepo{db: conn}
}

const unitLogColumns = `id, teacher_id, subject, title, started_at, status, note, created_at`

func (r *SQLUnitLogRepo) Create(ctx context.Context, u *domain.UnitLog) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = nowUTC()
	}
	query := `INSERT INTO unit_logs (` + unitLogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.TeacherID,
		u.Subject,
		u.Title,
		formatTime(u.StartedAt),
		string(u.Status),
		u.Note,
		formatTime(u.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting unit log: %w", err)
	}
	return nil
}

func (r *SQLUnitLogRepo) GetByID(ctx context.Context, id string) (*domain.UnitLog, error) {
	query := `SELECT ` + unitLogColumns + ` FROM unit_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	u, err := r.scanUnitLog(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unit log: %w", ErrNotFound)
	}
	return u, err
}

func (r *SQLUnitLogRepo) ListBetween(ctx context.Context, teacherID string, start, end time.Time) ([]*domain.UnitLog, error) {
	query, args := whereTeacher(
		`SELECT `+unitLogColumns+` FROM unit_logs WHERE started_at >= ? AND started_at <= ?`,
		[]any{formatTime(start), formatTime(end)}, teacherID)
	query += ` ORDER BY started_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing unit logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.UnitLog
	for rows.Next() {
		u, err := r.scanUnitLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unit logs: %w", err)
	}
	return logs, nil
}

func (r *SQLUnitLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM unit_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting unit log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("unit log %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanUnitLog returns sql.ErrNoRows unwrapped so callers can map it.
func (r *SQLUnitLogRepo) scanUnitLog(row rowScanner) (*domain.UnitLog, error) {
	var u domain.UnitLog
	var status, startedAtStr, createdAtStr string

	err := row.Scan(&u.ID, &u.TeacherID, &u.Subject, &u.Title, &startedAtStr, &status, &u.Note, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning unit log: %w", err)
	}
	u.Status = domain.UnitStatus(status)

	if u.StartedAt, err = parseTime("started_at", startedAtStr); err != nil {
		return nil, err
	}
	if u.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return &u, nil
}
