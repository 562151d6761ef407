package cli

import (
	"time"

	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Calendar service.CalendarService
	Feeds    service.FeedService

	// CalendarFor builds a calendar service scoped to another teacher.
	// Nil means --teacher is only accepted for the configured teacher.
	CalendarFor func(teacherID string) service.CalendarService

	Teacher  string
	Location *time.Location
	HTTPAddr string
	Debug    bool

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// RunForm runs a huh form to completion. Defaults to form.Run.
	RunForm func(*huh.Form) error
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "syllabus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "syllabus",
		Short:         "Teaching calendar: slot assignments and unit progress by month",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalendarCmd(app),
		newPlanningCmd(app),
		newBrowseCmd(app),
		newAssignCmd(app),
		newLogUnitCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
