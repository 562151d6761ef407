package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the layout of calendar date keys.
const DateKeyLayout = "2006-01-02"

// DateKey formats the calendar date of t as YYYY-MM-DD using t's own
// location. Timestamps must be moved into the display location with
// t.In(loc) before calling, never normalized to UTC.
func DateKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, LocationOrLocal(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// StartOfDay strips the time of day from t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LocationOrLocal returns loc, or time.Local when loc is nil.
func LocationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
