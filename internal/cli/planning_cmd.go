package cli

import (
	"fmt"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanningCmd(app *App) *cobra.Command {
	var month monthFlag
	var teacher string
	var history bool

	cmd := &cobra.Command{
		Use:   "planning",
		Short: "List scheduled classes of a month, grouped by subject and batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.calendarFor(teacher)
			if err != nil {
				return err
			}
			m := month.resolve(svc)
			if _, err := app.loadMonth(cmd, svc, m); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanning(svc.PlanningView(m), history))
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Month to show (default current)")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")
	cmd.Flags().BoolVar(&history, "history", false, "Include classes before today")

	return cmd
}
