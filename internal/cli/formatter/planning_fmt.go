package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/domain"
)

// FormatPlanning renders the scheduled list of a month, and the history list
// when showHistory is set.
func FormatPlanning(view *app.PlanningView, showHistory bool) string {
	var b strings.Builder

	if view.Unavailable {
		b.WriteString(StyleRed.Render("Calendar feeds unavailable; no planning data.") + "\n\n")
	}

	b.WriteString(Header(fmt.Sprintf("Scheduled (%d)", len(view.Scheduled))) + "\n")
	b.WriteString(planningTable(view, view.Scheduled, "Nothing scheduled."))

	if showHistory {
		b.WriteString("\n" + Header(fmt.Sprintf("History (%d)", len(view.History))) + "\n")
		b.WriteString(planningTable(view, view.History, "No past classes this month."))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Total:"), Bold(FormatHours(view.TotalHours))))

	if len(view.Issues) > 0 {
		b.WriteString("\n")
		for _, issue := range view.Issues {
			b.WriteString(StyleYellow.Render("  WARNING: "+issue.String()) + "\n")
		}
	}

	return RenderBox("Planning "+view.Month.Label(), b.String())
}

func planningTable(view *app.PlanningView, items []domain.PlanningItem, empty string) string {
	if len(items) == 0 {
		return Dim(empty) + "\n"
	}
	headers := []string{"DATE", "WHEN", "SUBJECT", "BATCH", "HOURS", "STATUS"}
	rows := make([][]string, 0, len(items))
	hours := 0
	for _, it := range items {
		hours += it.Hours
		rows = append(rows, []string{
			StyleFg.Render(DayLabel(it.Date)),
			Dim(RelativeDay(it.Date, view.Today)),
			Bold(it.Subject),
			BatchLabel(it.Batch),
			FormatHours(it.Hours),
			PlanningStatusPill(it.Status),
		})
	}
	return Table{
		Headers:    headers,
		Rows:       rows,
		Footer:     []string{"", "", "", "", FormatHours(hours), ""},
		RightAlign: map[int]bool{4: true},
	}.Render()
}
