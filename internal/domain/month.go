package domain

import (
	"fmt"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns a display label such as "June 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Next returns the following month, rolling over into the next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month, rolling back into the previous year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Navigate returns the month adjacent to m in direction d.
// Unknown directions return m unchanged.
func (m Month) Navigate(d Direction) Month {
	switch d {
	case DirectionPrev:
		return m.Prev()
	case DirectionNext:
		return m.Next()
	default:
		return m
	}
}

// Start returns midnight of the first day of the month in loc.
func (m Month) Start(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, LocationOrLocal(loc))
}

// End returns the last instant of the last day of the month in loc, for
// inclusive range comparisons.
func (m Month) End(loc *time.Location) time.Time {
	next := m.Next()
	return time.Date(next.Year, next.Month, 1, 0, 0, 0, 0, LocationOrLocal(loc)).Add(-time.Nanosecond)
}

// Contains reports whether t falls within [Start, End] of the month,
// evaluated in t's location.
func (m Month) Contains(t time.Time) bool {
	loc := t.Location()
	return !t.Before(m.Start(loc)) && !t.After(m.End(loc))
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.End(time.UTC).Day()
}

// ParseDirection parses "prev" or "next".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionPrev, DirectionNext:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q (expected prev or next)", s)
	}
}
