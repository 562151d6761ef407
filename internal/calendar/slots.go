package calendar

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// DaySlots holds the slot fields chosen for one date.
type DaySlots struct {
	Date            time.Time
	AssignedSlotIDs []string
	ScheduleEntries []domain.ScheduleEntry
}

// SlotModel maps a date key to the slots displayed for that date.
type SlotModel map[string]DaySlots

// NormalizeSlots folds scheduling records into a date-keyed slot model.
// Records are keyed by the calendar fields of their Date. A later record for
// the same date overwrites the earlier one, including when it selects no
// slots: the date then has no entry at all.
func NormalizeSlots(records []domain.SlotAssignmentRecord) SlotModel {
	out := make(SlotModel, len(records))
	for _, rec := range records {
		key := domain.DateKey(rec.Date)
		ids := SelectSlots(rec)
		if len(ids) == 0 {
			delete(out, key)
			continue
		}
		out[key] = DaySlots{
			Date:            domain.StartOfDay(rec.Date),
			AssignedSlotIDs: ids,
			ScheduleEntries: domain.CloneEntries(rec.ScheduleEntries),
		}
	}
	return out
}

// SelectSlots applies the display precedence for one record:
//  1. a non-empty scheduled override list is used as given;
//  2. otherwise checked slots that are approved or carry no status;
//  3. otherwise nothing.
//
// The result is an ordered set: blank and repeated ids are dropped, keeping
// the first occurrence.
func SelectSlots(rec domain.SlotAssignmentRecord) []string {
	if ids := orderedSet(rec.ScheduledSlotIDs); len(ids) > 0 {
		return ids
	}
	var active []string
	for _, s := range rec.Slots {
		if s.Checked && s.Status.Counts() {
			active = append(active, s.ID)
		}
	}
	return orderedSet(active)
}

func orderedSet(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
