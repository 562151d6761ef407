package calendar

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// MaxHeatLevel is the highest heat-map intensity bucket.
const MaxHeatLevel = 4

// MonthSummary aggregates one month of the calendar model for the
// dashboard cards.
type MonthSummary struct {
	Month           domain.Month
	TeachingDays    int
	TotalHours      int
	ScheduledHours  int
	HistoryHours    int
	MaxDayHours     int
	CompletedUnits  int
	InProgressUnits int
	TotalUnits      int
}

// Summarize totals the days of month. Hours follow the same today split as
// Project; unit counters include slot-less days.
func Summarize(m Model, month domain.Month, now time.Time, loc *time.Location) MonthSummary {
	loc = domain.LocationOrLocal(loc)
	today := domain.StartOfDay(now.In(loc))

	s := MonthSummary{Month: month}
	for _, d := range daysInMonth(m, month, loc) {
		s.CompletedUnits += d.day.CompletedUnits
		s.InProgressUnits += d.day.InProgressUnits
		s.TotalUnits += d.day.TotalUnits

		hours := d.day.Hours()
		if hours == 0 {
			continue
		}
		s.TeachingDays++
		s.TotalHours += hours
		if d.date.Before(today) {
			s.HistoryHours += hours
		} else {
			s.ScheduledHours += hours
		}
		if hours > s.MaxDayHours {
			s.MaxDayHours = hours
		}
	}
	return s
}

// HeatLevel buckets a day's hours into 0..MaxHeatLevel relative to the
// busiest day of the month. Any nonzero day is at least level 1.
func HeatLevel(hours, maxHours int) int {
	if hours <= 0 || maxHours <= 0 {
		return 0
	}
	if hours >= maxHours {
		return MaxHeatLevel
	}
	level := (hours*MaxHeatLevel + maxHours - 1) / maxHours
	if level < 1 {
		return 1
	}
	return level
}
