package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/calendar"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/stretchr/testify/assert"
)

var june2024 = domain.Month{Year: 2024, Month: time.June}

func day(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatCalendar_RendersGridAndSummary(t *testing.T) {
	view := &app.CalendarView{
		Month: june2024,
		Weeks: [][7]app.DayCell{
			{
				{}, {}, {}, {}, {},
				{Date: day(1), InMonth: true, Hours: 2, Heat: 4},
				{Date: day(2), InMonth: true},
			},
			{
				{Date: day(3), InMonth: true, Today: true, Hours: 1, Heat: 2},
			},
		},
		Summary: calendar.MonthSummary{
			Month:          june2024,
			TeachingDays:   2,
			TotalHours:     3,
			ScheduledHours: 1,
			HistoryHours:   2,
			CompletedUnits: 1,
			TotalUnits:     4,
		},
	}

	out := FormatCalendar(view)
	assert.Contains(t, out, "JUNE 2024")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "[ 3]")
	assert.Contains(t, out, " 1 ")
	assert.Contains(t, out, "3 hrs")
	assert.Contains(t, out, "1/4")
	assert.NotContains(t, out, "unavailable")
}

func TestFormatCalendar_FlagsUnavailableFeeds(t *testing.T) {
	out := FormatCalendar(&app.CalendarView{Month: june2024, Unavailable: true})
	assert.Contains(t, out, "unavailable")
	assert.Contains(t, out, "No units logged")
}

func TestFormatPlanning_HistoryIsOptional(t *testing.T) {
	batch := "B1"
	view := &app.PlanningView{
		Month: june2024,
		Today: day(10),
		Scheduled: []domain.PlanningItem{
			{Date: day(12), Hours: 2, Subject: "Physics", Batch: &batch, Status: domain.PlanningScheduled},
		},
		History: []domain.PlanningItem{
			{Date: day(3), Hours: 1, Subject: "Chemistry", Status: domain.PlanningHistory},
		},
		TotalHours: 3,
	}

	out := FormatPlanning(view, false)
	assert.Contains(t, out, "Physics")
	assert.Contains(t, out, "B1")
	assert.Contains(t, out, "In 2d")
	assert.NotContains(t, out, "Chemistry")

	out = FormatPlanning(view, true)
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "7d ago")
	assert.Contains(t, out, "3 hrs")
}

func TestFormatPlanning_ListsPartitionIssues(t *testing.T) {
	view := &app.PlanningView{
		Month: june2024,
		Today: day(1),
		Issues: []calendar.PartitionIssue{
			{DateKey: "2024-06-05", SlotID: "s2", Kind: calendar.IssueUncovered},
		},
	}
	out := FormatPlanning(view, false)
	assert.Contains(t, out, "Nothing scheduled.")
	assert.Contains(t, out, "WARNING: 2024-06-05: slot s2 uncovered")
}

func TestFormatImportResult_ListsSkipped(t *testing.T) {
	out := FormatImportResult(&app.ImportResult{
		Days:     3,
		UnitLogs: 5,
		Skipped: []feed.RecordError{
			{Kind: feed.KindUnitLog, Index: 2, Reason: "startTime is required"},
		},
	})
	assert.Contains(t, out, "IMPORT")
	assert.Contains(t, out, "Skipped 1 malformed record(s)")
	assert.Contains(t, out, "unit-log[2]")
	assert.Contains(t, out, "startTime is required")
}

func TestFormatAssignmentAndUnitLog(t *testing.T) {
	a := &domain.SlotAssignment{Day: "2024-06-05", Slots: []domain.Slot{{ID: "s1"}, {ID: "s2"}}}
	out := FormatAssignment(a)
	assert.Contains(t, out, "2 hrs")
	assert.Contains(t, out, "2024-06-05")
	assert.Contains(t, out, "s1, s2")

	u := &domain.UnitLog{
		ID:        "0123456789abcdef",
		Subject:   "Biology",
		StartedAt: time.Date(2024, 6, 5, 8, 30, 0, 0, time.UTC),
		Status:    domain.UnitInProgress,
	}
	out = FormatUnitLog(u)
	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "2024-06-05 08:30")
	assert.Contains(t, out, "In progress")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
}

func TestRelativeDay(t *testing.T) {
	today := day(15)
	tests := map[string]time.Time{
		"Today":     day(15),
		"Tomorrow":  day(16),
		"Yesterday": day(14),
		"In 5d":     day(20),
		"3d ago":    day(12),
		"In 2w":     today.AddDate(0, 0, 15),
		"2w ago":    today.AddDate(0, 0, -14),
	}
	for want, date := range tests {
		assert.Equal(t, want, RelativeDay(date, today), date.Format("2006-01-02"))
	}
}

func TestRenderProgress(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 0, 4), "0/0")
	assert.Contains(t, RenderProgress(3, 4, 4), "3/4")
	assert.Contains(t, RenderProgress(9, 4, 4), "4/4")
}

func TestTable_FooterAndRightAlign(t *testing.T) {
	out := Table{
		Headers:    []string{"NAME", "N"},
		Rows:       [][]string{{"a", "1"}, {"bb", "22"}},
		Footer:     []string{"", "23"},
		RightAlign: map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.True(t, strings.HasSuffix(lines[2], " 1"))
	assert.True(t, strings.HasSuffix(lines[5], "23"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestHeatStyle_ClampsLevel(t *testing.T) {
	assert.Equal(t, HeatStyle(-1).Render("x"), HeatStyle(0).Render("x"))
	assert.Equal(t, HeatStyle(99).Render("x"), HeatStyle(calendar.MaxHeatLevel).Render("x"))
}
