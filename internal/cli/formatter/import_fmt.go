package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
)

// FormatImportResult summarizes a feed import and lists skipped records.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Days:"), Bold(fmt.Sprintf("%d", res.Days))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Unit logs:"), Bold(fmt.Sprintf("%d", res.UnitLogs))))

	if len(res.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatSkipped(res.Skipped))
	}

	return RenderBox("Import", b.String())
}

// FormatSkipped lists malformed records that a decode dropped.
func FormatSkipped(skipped []feed.RecordError) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("Skipped %d malformed record(s):", len(skipped))) + "\n")
	for _, s := range skipped {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim(fmt.Sprintf("%s[%d]", s.Kind, s.Index)), s.Reason))
	}
	return b.String()
}

// FormatAssignment confirms a recorded slot assignment.
func FormatAssignment(a *domain.SlotAssignment) string {
	ids := a.ScheduledSlotIDs
	if len(ids) == 0 {
		ids = make([]string, 0, len(a.Slots))
		for _, s := range a.Slots {
			ids = append(ids, s.ID)
		}
	}
	return fmt.Sprintf("%s %s %s %s\n",
		StyleGreen.Render("Assigned"),
		Bold(FormatHours(len(ids))),
		Dim("on "+a.Day+":"),
		strings.Join(ids, ", "),
	)
}

// FormatUnitLog confirms a recorded unit log.
func FormatUnitLog(u *domain.UnitLog) string {
	title := u.Title
	if title == "" {
		title = u.Subject
	}
	if title == "" {
		title = "unit"
	}
	return fmt.Sprintf("%s %s %s %s %s\n",
		StyleGreen.Render("Logged"),
		Bold(title),
		Dim("at "+u.StartedAt.Format("2006-01-02 15:04")),
		UnitStatusPill(u.Status),
		TruncID(u.ID),
	)
}
