package httpapi

import (
	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/domain"
)

type loadJSON struct {
	Generation  uint64        `json:"generation"`
	Unavailable bool          `json:"unavailable"`
	Reason      string        `json:"reason,omitempty"`
	Skipped     []skippedJSON `json:"skipped,omitempty"`
}

type skippedJSON struct {
	Kind   string `json:"kind"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type dayCellJSON struct {
	Date            string `json:"date"`
	InMonth         bool   `json:"inMonth"`
	Today           bool   `json:"today,omitempty"`
	Hours           int    `json:"hours"`
	Heat            int    `json:"heat"`
	CompletedUnits  int    `json:"completedUnits"`
	InProgressUnits int    `json:"inProgressUnits"`
	TotalUnits      int    `json:"totalUnits"`
}

type summaryJSON struct {
	TeachingDays    int `json:"teachingDays"`
	TotalHours      int `json:"totalHours"`
	ScheduledHours  int `json:"scheduledHours"`
	HistoryHours    int `json:"historyHours"`
	MaxDayHours     int `json:"maxDayHours"`
	CompletedUnits  int `json:"completedUnits"`
	InProgressUnits int `json:"inProgressUnits"`
	TotalUnits      int `json:"totalUnits"`
}

type calendarJSON struct {
	Month   string           `json:"month"`
	Label   string           `json:"label"`
	Weeks   [][7]dayCellJSON `json:"weeks"`
	Summary summaryJSON      `json:"summary"`
	Load    loadJSON         `json:"load"`
}

type planningItemJSON struct {
	Date    string  `json:"date"`
	Hours   int     `json:"hours"`
	Subject string  `json:"subject"`
	Batch   *string `json:"batch,omitempty"`
	Status  string  `json:"status"`
}

type planningJSON struct {
	Month      string             `json:"month"`
	Today      string             `json:"today"`
	Scheduled  []planningItemJSON `json:"scheduled"`
	History    []planningItemJSON `json:"history"`
	TotalHours int                `json:"totalHours"`
	Issues     []string           `json:"issues,omitempty"`
	Load       loadJSON           `json:"load"`
}

type importJSON struct {
	Days     int           `json:"days"`
	UnitLogs int           `json:"unitLogs"`
	Skipped  []skippedJSON `json:"skipped,omitempty"`
}

func newLoadJSON(res *app.LoadResult) loadJSON {
	return loadJSON{
		Generation:  res.Generation,
		Unavailable: res.Unavailable,
		Reason:      res.Reason,
		Skipped:     newSkippedJSON(res),
	}
}

func newSkippedJSON(res *app.LoadResult) []skippedJSON {
	out := make([]skippedJSON, 0, len(res.Skipped))
	for _, s := range res.Skipped {
		out = append(out, skippedJSON{Kind: string(s.Kind), Index: s.Index, Reason: s.Reason})
	}
	return out
}

func newCalendarJSON(view *app.CalendarView, res *app.LoadResult) calendarJSON {
	out := calendarJSON{
		Month: view.Month.String(),
		Label: view.Month.Label(),
		Weeks: make([][7]dayCellJSON, 0, len(view.Weeks)),
		Summary: summaryJSON{
			TeachingDays:    view.Summary.TeachingDays,
			TotalHours:      view.Summary.TotalHours,
			ScheduledHours:  view.Summary.ScheduledHours,
			HistoryHours:    view.Summary.HistoryHours,
			MaxDayHours:     view.Summary.MaxDayHours,
			CompletedUnits:  view.Summary.CompletedUnits,
			InProgressUnits: view.Summary.InProgressUnits,
			TotalUnits:      view.Summary.TotalUnits,
		},
		Load: newLoadJSON(res),
	}
	for _, week := range view.Weeks {
		var row [7]dayCellJSON
		for i, cell := range week {
			row[i] = dayCellJSON{
				Date:            cell.Key,
				InMonth:         cell.InMonth,
				Today:           cell.Today,
				Hours:           cell.Hours,
				Heat:            cell.Heat,
				CompletedUnits:  cell.CompletedUnits,
				InProgressUnits: cell.InProgressUnits,
				TotalUnits:      cell.TotalUnits,
			}
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}

func newPlanningItems(items []domain.PlanningItem) []planningItemJSON {
	out := make([]planningItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, planningItemJSON{
			Date:    domain.DateKey(it.Date),
			Hours:   it.Hours,
			Subject: it.Subject,
			Batch:   it.Batch,
			Status:  string(it.Status),
		})
	}
	return out
}

func newPlanningJSON(view *app.PlanningView, res *app.LoadResult) planningJSON {
	out := planningJSON{
		Month:      view.Month.String(),
		Today:      domain.DateKey(view.Today),
		Scheduled:  newPlanningItems(view.Scheduled),
		History:    newPlanningItems(view.History),
		TotalHours: view.TotalHours,
		Load:       newLoadJSON(res),
	}
	for _, issue := range view.Issues {
		out.Issues = append(out.Issues, issue.String())
	}
	return out
}

func newImportJSON(res *app.ImportResult) importJSON {
	out := importJSON{Days: res.Days, UnitLogs: res.UnitLogs}
	for _, s := range res.Skipped {
		out.Skipped = append(out.Skipped, skippedJSON{Kind: string(s.Kind), Index: s.Index, Reason: s.Reason})
	}
	return out
}
