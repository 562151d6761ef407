package app

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/calendar"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
)

// LoadResult describes one completed load cycle.
type LoadResult struct {
	Month      domain.Month
	Generation uint64
	// Days is the number of date keys in the new model.
	Days int
	// Unavailable is set when the feeds could not be retrieved; the model
	// was cleared to empty for the month.
	Unavailable bool
	Reason      string
	Skipped     []feed.RecordError
	LoadedAt    time.Time
	// View is the month rendered from the model this load installed.
	View *CalendarView
}

// PlanningView is the list view of one month.
type PlanningView struct {
	Month       domain.Month
	Today       time.Time
	Scheduled   []domain.PlanningItem
	History     []domain.PlanningItem
	TotalHours  int
	Issues      []calendar.PartitionIssue
	Unavailable bool
}

// DayCell is one square of the month heat-map.
type DayCell struct {
	Date            time.Time
	Key             string
	InMonth         bool
	Today           bool
	Hours           int
	Heat            int
	CompletedUnits  int
	InProgressUnits int
	TotalUnits      int
}

// CalendarView is the heat-map view of one month.
type CalendarView struct {
	Month       domain.Month
	Weeks       [][7]DayCell
	Summary     calendar.MonthSummary
	Unavailable bool
}
