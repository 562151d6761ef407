package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// startLayouts are accepted by --start after RFC 3339, read in the display location.
var startLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	domain.DateKeyLayout,
}

type logUnitInput struct {
	Start   string
	Status  string
	Subject string
	Title   string
	Note    string
}

func newLogUnitCmd(a *App) *cobra.Command {
	var in logUnitInput
	var teacher string

	cmd := &cobra.Command{
		Use:   "log-unit",
		Short: "Record a unit-of-work log entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in.Start) == "" {
				if !a.interactive() {
					return &app.RequestError{Code: app.ErrMissingStartTime, Message: "--start is required"}
				}
				if err := a.runForm(newLogUnitForm(&in, a.now(), a.location())); err != nil {
					return err
				}
			}

			started, err := parseStart(in.Start, a.location())
			if err != nil {
				return err
			}

			u, err := a.Feeds.LogUnit(cmd.Context(), app.LogUnitRequest{
				TeacherID: a.teacher(teacher),
				Subject:   in.Subject,
				Title:     in.Title,
				StartedAt: started,
				Status:    domain.UnitStatus(in.Status),
				Note:      in.Note,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnitLog(u))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Start, "start", "", "Start time (RFC 3339 or YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&in.Status, "status", string(domain.UnitCompleted), "Unit status (completed, in-progress, ...)")
	cmd.Flags().StringVar(&in.Subject, "subject", "", "Subject name")
	cmd.Flags().StringVar(&in.Title, "title", "", "Unit title")
	cmd.Flags().StringVar(&in.Note, "note", "", "Free-form note")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")

	return cmd
}

// newLogUnitForm collects the fields of in that flags did not supply.
// The start time defaults to now.
func newLogUnitForm(in *logUnitInput, now time.Time, loc *time.Location) *huh.Form {
	if in.Start == "" {
		in.Start = now.Format(startLayouts[0])
	}
	if in.Status == "" {
		in.Status = string(domain.UnitCompleted)
	}

	options := make([]huh.Option[string], 0, len(domain.ValidUnitStatuses))
	for _, s := range domain.ValidUnitStatuses {
		options = append(options, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start time").
				Placeholder("YYYY-MM-DD HH:MM").
				Value(&in.Start).
				Validate(func(s string) error {
					_, err := parseStart(s, loc)
					return err
				}),
			huh.NewSelect[string]().
				Title("Status").
				Options(options...).
				Value(&in.Status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Subject (optional)").Value(&in.Subject),
			huh.NewInput().Title("Title (optional)").Value(&in.Title),
			huh.NewText().Title("Note (optional)").Value(&in.Note),
		),
	).WithTheme(syllabusHuhTheme()).WithShowHelp(false)
}

func parseStart(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &app.RequestError{Code: app.ErrMissingStartTime, Message: "start time is required"}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &app.RequestError{
		Code:    app.ErrInvalidDate,
		Message: fmt.Sprintf("invalid start time %q (expected RFC 3339 or YYYY-MM-DD HH:MM)", s),
	}
}
