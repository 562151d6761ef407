// Package feed retrieves the two upstream calendar feeds: approved slot
// assignments and unit-of-work logs.
package feed

import (
	"context"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// FeedQuery scopes a feed fetch to one teacher and a closed time range.
type FeedQuery struct {
	TeacherID string
	Start     time.Time
	End       time.Time
	// Location is the display location used to interpret calendar dates.
	Location *time.Location
}

// QueryForMonth returns the query covering every instant of m in loc.
func QueryForMonth(teacherID string, m domain.Month, loc *time.Location) FeedQuery {
	loc = domain.LocationOrLocal(loc)
	return FeedQuery{
		TeacherID: teacherID,
		Start:     m.Start(loc),
		End:       m.End(loc),
		Location:  loc,
	}
}

// StartDay and EndDay are the query bounds as date keys in the query location.
func (q FeedQuery) StartDay() string {
	return domain.DateKey(q.Start.In(domain.LocationOrLocal(q.Location)))
}

func (q FeedQuery) EndDay() string {
	return domain.DateKey(q.End.In(domain.LocationOrLocal(q.Location)))
}

// Feeds is the result of one fetch: both record lists plus the records
// that were dropped as malformed.
type Feeds struct {
	SlotAssignments []domain.SlotAssignmentRecord
	UnitLogs        []domain.UnitLogRecord
	Skipped         []RecordError
}

// Source fetches both feeds for a query. Implementations wrap every
// failure so that errors.Is(err, ErrFeedUnavailable) holds.
type Source interface {
	FetchCalendarFeeds(ctx context.Context, q FeedQuery) (*Feeds, error)
}

// NewFeeds converts stored rows into feed records dated in loc. Rows whose
// day key cannot be parsed are reported in Skipped.
func NewFeeds(assignments []*domain.SlotAssignment, logs []*domain.UnitLog, loc *time.Location) *Feeds {
	loc = domain.LocationOrLocal(loc)
	f := &Feeds{
		SlotAssignments: make([]domain.SlotAssignmentRecord, 0, len(assignments)),
		UnitLogs:        make([]domain.UnitLogRecord, 0, len(logs)),
	}
	for i, a := range assignments {
		rec, err := a.Record(loc)
		if err != nil {
			f.Skipped = append(f.Skipped, RecordError{Kind: KindSlotAssignment, Index: i, Reason: err.Error()})
			continue
		}
		f.SlotAssignments = append(f.SlotAssignments, rec)
	}
	for _, u := range logs {
		f.UnitLogs = append(f.UnitLogs, u.Record())
	}
	return f
}
