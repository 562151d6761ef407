package app

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
)

// AssignSlotsRequest records one day of approved slots.
type AssignSlotsRequest struct {
	TeacherID        string
	Day              string
	SlotIDs          []string
	ScheduledSlotIDs []string
	Entries          []domain.ScheduleEntry
}

// LogUnitRequest records one unit-of-work log entry.
type LogUnitRequest struct {
	TeacherID string
	Subject   string
	Title     string
	StartedAt time.Time
	Status    domain.UnitStatus
	Note      string
}

// ImportResult holds the outcome of a feed import.
type ImportResult struct {
	Days     int
	UnitLogs int
	Skipped  []feed.RecordError
}
