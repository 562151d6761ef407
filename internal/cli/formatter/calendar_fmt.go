package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
)

const unitBarWidth = 12

var weekdayHeaders = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// FormatCalendar renders the month heat-map followed by the summary cards.
func FormatCalendar(view *app.CalendarView) string {
	var b strings.Builder

	if view.Unavailable {
		b.WriteString(StyleRed.Render("Calendar feeds unavailable; showing an empty month.") + "\n\n")
	}

	b.WriteString(FormatHeatMap(view))
	b.WriteString("\n")
	b.WriteString(FormatSummary(view))

	return RenderBox(view.Month.Label(), b.String())
}

// FormatHeatMap renders the Monday-first grid of the month. Each in-month
// cell shows the day number shaded by its heat level; today is bracketed.
func FormatHeatMap(view *app.CalendarView) string {
	var b strings.Builder
	for i, h := range weekdayHeaders {
		b.WriteString(Dim(fmt.Sprintf(" %-3s", h)))
		if i < len(weekdayHeaders)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for _, week := range view.Weeks {
		for i, cell := range week {
			b.WriteString(renderCell(cell))
			if i < len(week)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(heatLegend())
	return b.String()
}

func renderCell(cell app.DayCell) string {
	if !cell.InMonth {
		return "    "
	}
	label := fmt.Sprintf(" %2d ", cell.Date.Day())
	if cell.Today {
		label = fmt.Sprintf("[%2d]", cell.Date.Day())
	}
	return HeatStyle(cell.Heat).Render(label)
}

func heatLegend() string {
	var b strings.Builder
	b.WriteString(Dim("less "))
	for level := range heatColors {
		b.WriteString(HeatStyle(level).Render("  "))
	}
	b.WriteString(Dim(" more"))
	return b.String() + "\n"
}

// FormatSummary renders the month totals below the heat-map.
func FormatSummary(view *app.CalendarView) string {
	s := view.Summary
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Teaching days:"), Bold(fmt.Sprintf("%d", s.TeachingDays)),
		Dim("Total:"), Bold(FormatHours(s.TotalHours)),
	))
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Scheduled:"), StyleGreen.Render(FormatHours(s.ScheduledHours)),
		Dim("History:"), StyleDim.Render(FormatHours(s.HistoryHours)),
	))
	if s.TotalUnits > 0 {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Dim("Units:"),
			RenderProgress(s.CompletedUnits, s.TotalUnits, unitBarWidth),
			StyleYellow.Render(fmt.Sprintf("%d in progress", s.InProgressUnits)),
		))
	} else {
		b.WriteString(Dim("No units logged this month.") + "\n")
	}
	return b.String()
}
