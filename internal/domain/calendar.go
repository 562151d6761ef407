package domain

import "time"

// UngroupedSubject labels planning items synthesized from a day without
// schedule entries.
const UngroupedSubject = "Class time"

// CalendarDay is the merged per-day datum shared by every calendar view.
type CalendarDay struct {
	Date            time.Time
	AssignedSlotIDs []string
	ScheduleEntries []ScheduleEntry

	CompletedUnits  int
	InProgressUnits int
	TotalUnits      int
}

// Hours is the number of assigned slots on the day.
func (d *CalendarDay) Hours() int {
	return len(d.AssignedSlotIDs)
}

// Clone returns a deep copy of the day.
func (d *CalendarDay) Clone() *CalendarDay {
	out := *d
	out.AssignedSlotIDs = cloneStrings(d.AssignedSlotIDs)
	out.ScheduleEntries = CloneEntries(d.ScheduleEntries)
	return &out
}

// PlanningItem is one derived row of the planning list.
type PlanningItem struct {
	Date    time.Time
	Hours   int
	Subject string
	Batch   *string
	Status  PlanningStatus
}
