package calendar

import (
	"sort"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// Planning is the projected list view for one month.
type Planning struct {
	Month domain.Month
	// Items holds every planning item sorted ascending by date. Items on the
	// same date keep their discovery order.
	Items     []domain.PlanningItem
	Scheduled []domain.PlanningItem
	History   []domain.PlanningItem
	// Issues lists days whose schedule entries do not partition their slots.
	Issues []PartitionIssue
}

// TotalHours sums the hours of all items.
func (p Planning) TotalHours() int {
	var n int
	for _, it := range p.Items {
		n += it.Hours
	}
	return n
}

type datedDay struct {
	key  string
	date time.Time
	day  *domain.CalendarDay
}

// daysInMonth returns the model's days within [month start, month end] in
// loc, ascending by date.
func daysInMonth(m Model, month domain.Month, loc *time.Location) []datedDay {
	start, end := month.Start(loc), month.End(loc)
	var out []datedDay
	for _, key := range m.Keys() {
		date, err := domain.ParseDateKey(key, loc)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		out = append(out, datedDay{key: key, date: date, day: m[key]})
	}
	return out
}

// Project derives the planning view of month from the calendar model.
// Status is decided against now with the time of day stripped in loc: days
// before today are history, today and later are scheduled.
func Project(m Model, month domain.Month, now time.Time, loc *time.Location) Planning {
	loc = domain.LocationOrLocal(loc)
	today := domain.StartOfDay(now.In(loc))

	p := Planning{Month: month}
	for _, d := range daysInMonth(m, month, loc) {
		if d.day.Hours() == 0 {
			continue
		}
		p.Issues = append(p.Issues, ValidatePartition(d.key, d.day)...)

		status := domain.PlanningScheduled
		if d.date.Before(today) {
			status = domain.PlanningHistory
		}

		for _, e := range dayEntries(d.day) {
			hours := len(e.SlotIDs)
			if hours == 0 {
				continue
			}
			subject := e.SubjectName
			if subject == "" {
				subject = domain.UngroupedSubject
			}
			item := domain.PlanningItem{
				Date:    d.date,
				Hours:   hours,
				Subject: subject,
				Status:  status,
			}
			if e.Batch != nil {
				b := *e.Batch
				item.Batch = &b
			}
			p.Items = append(p.Items, item)
		}
	}

	sort.SliceStable(p.Items, func(i, j int) bool {
		return p.Items[i].Date.Before(p.Items[j].Date)
	})

	for _, it := range p.Items {
		if it.Status == domain.PlanningHistory {
			p.History = append(p.History, it)
		} else {
			p.Scheduled = append(p.Scheduled, it)
		}
	}
	return p
}

// dayEntries returns the day's schedule entries, or a single ungrouped
// entry covering every assigned slot when it has none.
func dayEntries(day *domain.CalendarDay) []domain.ScheduleEntry {
	if len(day.ScheduleEntries) > 0 {
		return day.ScheduleEntries
	}
	return []domain.ScheduleEntry{{
		SubjectName: domain.UngroupedSubject,
		SlotIDs:     day.AssignedSlotIDs,
	}}
}
