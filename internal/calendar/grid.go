package calendar

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// MonthGrid lays the month out as Monday-first weeks of seven cells. Cells
// outside the month are zero times.
func MonthGrid(month domain.Month, loc *time.Location) [][7]time.Time {
	loc = domain.LocationOrLocal(loc)
	first := month.Start(loc)
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][7]time.Time
	var week [7]time.Time
	col := offset
	for day := 1; day <= month.Days(); day++ {
		week[col] = time.Date(month.Year, month.Month, day, 0, 0, 0, 0, loc)
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]time.Time{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
