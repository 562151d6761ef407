package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// SlotAssignmentRepo stores one scheduling-feed day per teacher and date.
type SlotAssignmentRepo interface {
	// Upsert inserts the day or replaces the slot payload of the existing
	// row for the same teacher and date. a.ID and a.CreatedAt are updated to
	// the stored values.
	Upsert(ctx context.Context, a *domain.SlotAssignment) error
	GetByDate(ctx context.Context, teacherID, day string) (*domain.SlotAssignment, error)
	// ListBetween returns days with startDay <= day <= endDay ordered by day.
	// An empty teacherID matches every teacher.
	ListBetween(ctx context.Context, teacherID, startDay, endDay string) ([]*domain.SlotAssignment, error)
	Delete(ctx context.Context, teacherID, day string) error
}

// UnitLogRepo stores unit-of-work log entries.
type UnitLogRepo interface {
	Create(ctx context.Context, u *domain.UnitLog) error
	GetByID(ctx context.Context, id string) (*domain.UnitLog, error)
	// ListBetween returns entries with start <= started_at <= end ordered by
	// started_at. An empty teacherID matches every teacher.
	ListBetween(ctx context.Context, teacherID string, start, end time.Time) ([]*domain.UnitLog, error)
	Delete(ctx context.Context, id string) error
}
