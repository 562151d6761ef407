package calendar

import (
	"sort"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// Model is the merged day-keyed calendar model.
type Model map[string]*domain.CalendarDay

// Build runs both feed folds and merges their results.
func Build(records []domain.SlotAssignmentRecord, logs []domain.UnitLogRecord, loc *time.Location) Model {
	return Merge(NormalizeSlots(records), AccumulateUnits(logs, loc))
}

// Merge combines a slot model and a unit model into a calendar model.
// Either side may be nil or empty.
func Merge(slots SlotModel, units UnitModel) Model {
	m := make(Model, len(slots)+len(units))
	ApplySlots(m, slots)
	ApplyUnits(m, units)
	return m
}

// ApplySlots writes slot fields into m. Slot fields of existing days are
// overwritten and their unit counters left alone; new days start with zero
// counters. Together with ApplyUnits the result does not depend on which
// is applied first.
func ApplySlots(m Model, slots SlotModel) {
	for key, s := range slots {
		day, ok := m[key]
		if !ok {
			day = &domain.CalendarDay{}
			m[key] = day
		}
		// The scheduling feed's calendar date is authoritative for display.
		day.Date = s.Date
		day.AssignedSlotIDs = append([]string(nil), s.AssignedSlotIDs...)
		day.ScheduleEntries = domain.CloneEntries(s.ScheduleEntries)
	}
}

// ApplyUnits adds unit counters into m, creating slot-less days as needed.
func ApplyUnits(m Model, units UnitModel) {
	for key, u := range units {
		day, ok := m[key]
		if !ok {
			day = &domain.CalendarDay{Date: u.Date}
			m[key] = day
		}
		day.CompletedUnits += u.Completed
		day.InProgressUnits += u.InProgress
		day.TotalUnits += u.Total
	}
}

// Keys returns the model's date keys in ascending date order.
func (m Model) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy safe to hand to read-only consumers.
func (m Model) Clone() Model {
	out := make(Model, len(m))
	for k, d := range m {
		out[k] = d.Clone()
	}
	return out
}
