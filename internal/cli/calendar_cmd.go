package cli

import (
	"fmt"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month monthFlag
	var teacher string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month heat-map with teaching hours and unit progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.calendarFor(teacher)
			if err != nil {
				return err
			}
			m := month.resolve(svc)
			if _, err := app.loadMonth(cmd, svc, m); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(svc.CalendarView(m)))
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Month to show (default current)")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")

	return cmd
}
