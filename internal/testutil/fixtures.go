package testutil

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/google/uuid"
)

// Slot assignment options
type AssignmentOption func(*domain.SlotAssignment)

func WithTeacher(id string) AssignmentOption {
	return func(a *domain.SlotAssignment) {
		a.TeacherID = id
	}
}

// WithSlots replaces the slot list. Each id becomes a checked slot with no
// approval status.
func WithSlots(ids ...string) AssignmentOption {
	return func(a *domain.SlotAssignment) {
		a.Slots = nil
		for _, id := range ids {
			a.Slots = append(a.Slots, domain.Slot{ID: id, Checked: true})
		}
	}
}

func WithSlotStatus(id string, status domain.SlotStatus) AssignmentOption {
	return func(a *domain.SlotAssignment) {
		for i := range a.Slots {
			if a.Slots[i].ID == id {
				a.Slots[i].Status = status
			}
		}
	}
}

func WithScheduledSlotIDs(ids ...string) AssignmentOption {
	return func(a *domain.SlotAssignment) {
		a.ScheduledSlotIDs = ids
	}
}

func WithEntry(subject string, batch *string, slotIDs ...string) AssignmentOption {
	return func(a *domain.SlotAssignment) {
		a.ScheduleEntries = append(a.ScheduleEntries, domain.ScheduleEntry{
			SubjectName: subject,
			Batch:       batch,
			SlotIDs:     slotIDs,
		})
	}
}

// NewTestAssignment builds a day with two checked slots by default.
func NewTestAssignment(day string, opts ...AssignmentOption) *domain.SlotAssignment {
	a := &domain.SlotAssignment{
		ID:  uuid.New().String(),
		Day: day,
		Slots: []domain.Slot{
			{ID: "s1", Checked: true},
			{ID: "s2", Checked: true},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Unit log options
type UnitLogOption func(*domain.UnitLog)

func WithUnitTeacher(id string) UnitLogOption {
	return func(u *domain.UnitLog) {
		u.TeacherID = id
	}
}

func WithUnitStatus(s domain.UnitStatus) UnitLogOption {
	return func(u *domain.UnitLog) {
		u.Status = s
	}
}

func WithSubject(s string) UnitLogOption {
	return func(u *domain.UnitLog) {
		u.Subject = s
	}
}

func WithNote(n string) UnitLogOption {
	return func(u *domain.UnitLog) {
		u.Note = n
	}
}

// NewTestUnitLog builds a completed unit log starting at startedAt.
func NewTestUnitLog(startedAt time.Time, opts ...UnitLogOption) *domain.UnitLog {
	u := &domain.UnitLog{
		ID:        uuid.New().String(),
		Title:     "Unit",
		StartedAt: startedAt.UTC().Truncate(time.Second),
		Status:    domain.UnitCompleted,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
