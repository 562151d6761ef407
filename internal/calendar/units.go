package calendar

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// UnitCounts are the unit-log counters of one date.
type UnitCounts struct {
	Date       time.Time
	Completed  int
	InProgress int
	Total      int
}

// UnitModel maps a date key to that date's unit counters.
type UnitModel map[string]UnitCounts

// AccumulateUnits groups unit logs by the calendar date of their start time
// in loc and counts them. Every record adds to Total; only completed and
// in-progress records add to their own counter. Records without a start
// time are ignored.
func AccumulateUnits(logs []domain.UnitLogRecord, loc *time.Location) UnitModel {
	loc = domain.LocationOrLocal(loc)
	out := make(UnitModel)
	for _, l := range logs {
		if l.StartTime.IsZero() {
			continue
		}
		local := l.StartTime.In(loc)
		key := domain.DateKey(local)

		c, ok := out[key]
		if !ok {
			c.Date = domain.StartOfDay(local)
		}
		c.Total++
		switch l.Status {
		case domain.UnitCompleted:
			c.Completed++
		case domain.UnitInProgress:
			c.InProgress++
		}
		out[key] = c
	}
	return out
}
