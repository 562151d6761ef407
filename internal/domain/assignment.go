package domain

import "time"

// SlotAssignment is a stored day of approved slot assignments for a teacher.
type SlotAssignment struct {
	ID               string
	TeacherID        string
	Day              string // YYYY-MM-DD
	ScheduledSlotIDs []string
	Slots            []Slot
	ScheduleEntries  []ScheduleEntry
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Record converts the stored row into a feed record dated in loc.
func (a *SlotAssignment) Record(loc *time.Location) (SlotAssignmentRecord, error) {
	date, err := ParseDateKey(a.Day, loc)
	if err != nil {
		return SlotAssignmentRecord{}, err
	}
	slots := make([]Slot, len(a.Slots))
	copy(slots, a.Slots)
	return SlotAssignmentRecord{
		Date:             date,
		ScheduledSlotIDs: cloneStrings(a.ScheduledSlotIDs),
		Slots:            slots,
		ScheduleEntries:  CloneEntries(a.ScheduleEntries),
	}, nil
}

// UnitLog is a stored unit-of-work log entry.
type UnitLog struct {
	ID        string
	TeacherID string
	Subject   string
	Title     string
	StartedAt time.Time
	Status    UnitStatus
	Note      string
	CreatedAt time.Time
}

// Record converts the stored row into a feed record.
func (u *UnitLog) Record() UnitLogRecord {
	return UnitLogRecord{StartTime: u.StartedAt, Status: u.Status}
}
