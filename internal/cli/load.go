package cli

import (
	"fmt"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/spf13/cobra"
)

// loadMonth loads month into svc, with a spinner on interactive terminals.
// Skipped records and feed failures are reported on stderr.
func (a *App) loadMonth(cmd *cobra.Command, svc service.CalendarService, month domain.Month) (*app.LoadResult, error) {
	stop := func() {}
	if a.interactive() {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Loading "+month.Label()+"...")
	}
	res, err := svc.Load(cmd.Context(), month)
	stop()
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	if res.Unavailable {
		fmt.Fprintln(errOut, formatter.Dim("feeds: "+res.Reason))
	}
	if len(res.Skipped) > 0 {
		fmt.Fprint(errOut, formatter.FormatSkipped(res.Skipped))
	}
	return res, nil
}
