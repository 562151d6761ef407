package domain

import "time"

// Slot is one time slot on a day's scheduling payload.
type Slot struct {
	ID      string
	Checked bool
	Status  SlotStatus
}

// ScheduleEntry groups some of a day's assigned slots by subject and batch.
type ScheduleEntry struct {
	SubjectName string
	Batch       *string
	SlotIDs     []string
}

// Clone returns a deep copy of the entry.
func (e ScheduleEntry) Clone() ScheduleEntry {
	out := ScheduleEntry{SubjectName: e.SubjectName, SlotIDs: cloneStrings(e.SlotIDs)}
	if e.Batch != nil {
		b := *e.Batch
		out.Batch = &b
	}
	return out
}

// SlotAssignmentRecord is one day of the scheduling feed. Date is a calendar
// date (midnight in the display location).
type SlotAssignmentRecord struct {
	Date             time.Time
	ScheduledSlotIDs []string
	Slots            []Slot
	ScheduleEntries  []ScheduleEntry
}

// UnitLogRecord is one unit-of-work log entry of the unit feed.
type UnitLogRecord struct {
	StartTime time.Time
	Status    UnitStatus
}

// CloneEntries deep-copies a list of schedule entries; nil stays nil.
func CloneEntries(entries []ScheduleEntry) []ScheduleEntry {
	if entries == nil {
		return nil
	}
	out := make([]ScheduleEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
