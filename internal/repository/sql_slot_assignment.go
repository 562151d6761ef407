package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/domain"
)

// SQLSlotAssignmentRepo implements SlotAssignmentRepo for SQLite and PostgreSQL.
type SQLSlotAssignmentRepo struct {
	db db.DBTX
}

// NewSQLSlotAssignmentRepo creates a new SQLSlotAssignmentRepo. conn must
// accept `?` placeholders (see db.WithDialect).
func NewSQLSlotAssignmentRepo(conn db.DBTX) *SQLSlotAssignmentRepo {
	return &SQLSlotAssignmentRepo{db: conn}
}

// Stored JSON shapes. Kept separate from the domain types so the column
// format does not move with them.
type storedSlot struct {
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
	Status  string `json:"status,omitempty"`
}

type storedEntry struct {
	SubjectName string   `json:"subjectName"`
	Batch       *string  `json:"batch,omitempty"`
	SlotIDs     []string `json:"slotIds"`
}

const slotAssignmentColumns = `id, teacher_id, day_key, scheduled_slot_ids, slots, schedule_entries, created_at, updated_at`

func (r *SQLSlotAssignmentRepo) Upsert(ctx context.Context, a *domain.SlotAssignment) error {
	if _, err := domain.ParseDateKey(a.Day, nil); err != nil {
		return fmt.Errorf("slot assignment: %w", err)
	}
	ids, slots, entries, err := encodeAssignment(a)
	if err != nil {
		return err
	}

	now := nowUTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	query := `INSERT INTO slot_assignments (` + slotAssignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (teacher_id, day_key) DO UPDATE SET
			scheduled_slot_ids = excluded.scheduled_slot_ids,
			slots = excluded.slots,
			schedule_entries = excluded.schedule_entries,
			updated_at = excluded.updated_at
		RETURNING id, created_at`
	var createdAtStr string
	err = r.db.QueryRowContext(ctx, query,
		a.ID,
		a.TeacherID,
		a.Day,
		ids,
		slots,
		entries,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	).Scan(&a.ID, &createdAtStr)
	if err != nil {
		return fmt.Errorf("upserting slot assignment: %w", err)
	}
	a.CreatedAt, err = parseTime("created_at", createdAtStr)
	return err
}

func (r *SQLSlotAssignmentRepo) GetByDate(ctx context.Context, teacherID, day string) (*domain.SlotAssignment, error) {
	query := `SELECT ` + slotAssignmentColumns + ` FROM slot_assignments
		WHERE teacher_id = ? AND day_key = ?`
	row := r.db.QueryRowContext(ctx, query, teacherID, day)
	return r.scanAssignment(row)
}

func (r *SQLSlotAssignmentRepo) ListBetween(ctx context.Context, teacherID, startDay, endDay string) ([]*domain.SlotAssignment, error) {
	query, args := whereTeacher(
		`SELECT `+slotAssignmentColumns+` FROM slot_assignments WHERE day_key >= ? AND day_key <= ?`,
		[]any{startDay, endDay}, teacherID)
	query += ` ORDER BY day_key, teacher_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing slot assignments: %w", err)
	}
	defer rows.Close()

	var out []*domain.SlotAssignment
	for rows.Next() {
		a, err := r.scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slot assignments: %w", err)
	}
	return out, nil
}

func (r *SQLSlotAssignmentRepo) Delete(ctx context.Context, teacherID, day string) error {
	query := `DELETE FROM slot_assignments WHERE teacher_id = ? AND day_key = ?`
	res, err := r.db.ExecContext(ctx, query, teacherID, day)
	if err != nil {
		return fmt.Errorf("deleting slot assignment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("slot assignment %s: %w", day, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLSlotAssignmentRepo) scanAssignment(row rowScanner) (*domain.SlotAssignment, error) {
	var a domain.SlotAssignment
	var idsStr, slotsStr, entriesStr, createdAtStr, updatedAtStr string

	err := row.Scan(&a.ID, &a.TeacherID, &a.Day, &idsStr, &slotsStr, &entriesStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("slot assignment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning slot assignment: %w", err)
	}
	return r.populateAssignment(&a, idsStr, slotsStr, entriesStr, createdAtStr, updatedAtStr)
}

// populateAssignment fills decoded fields after scanning raw strings.
func (r *SQLSlotAssignmentRepo) populateAssignment(a *domain.SlotAssignment, idsStr, slotsStr, entriesStr, createdAtStr, updatedAtStr string) (*domain.SlotAssignment, error) {
	if err := decodeJSON("scheduled_slot_ids", idsStr, &a.ScheduledSlotIDs); err != nil {
		return nil, err
	}

	var slots []storedSlot
	if err := decodeJSON("slots", slotsStr, &slots); err != nil {
		return nil, err
	}
	for _, s := range slots {
		a.Slots = append(a.Slots, domain.Slot{ID: s.ID, Checked: s.Checked, Status: domain.SlotStatus(s.Status)})
	}

	var entries []storedEntry
	if err := decodeJSON("schedule_entries", entriesStr, &entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		a.ScheduleEntries = append(a.ScheduleEntries, domain.ScheduleEntry{
			SubjectName: e.SubjectName,
			Batch:       e.Batch,
			SlotIDs:     e.SlotIDs,
		})
	}

	var err error
	if a.CreatedAt, err = parseTime("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return a, nil
}

func encodeAssignment(a *domain.SlotAssignment) (ids, slots, entries string, err error) {
	if ids, err = encodeJSON("scheduled_slot_ids", a.ScheduledSlotIDs); err != nil {
		return
	}

	stored := make([]storedSlot, 0, len(a.Slots))
	for _, s := range a.Slots {
		stored = append(stored, storedSlot{ID: s.ID, Checked: s.Checked, Status: string(s.Status)})
	}
	if slots, err = encodeJSON("slots", stored); err != nil {
		return
	}

	storedEntries := make([]storedEntry, 0, len(a.ScheduleEntries))
	for _, e := range a.ScheduleEntries {
		storedEntries = append(storedEntries, storedEntry{SubjectName: e.SubjectName, Batch: e.Batch, SlotIDs: e.SlotIDs})
	}
	entries, err = encodeJSON("schedule_entries", storedEntries)
	return
}
