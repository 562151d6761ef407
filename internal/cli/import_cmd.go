package cli

import (
	"fmt"

	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	var teacher string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import slot assignments and unit logs from a JSON feed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := feed.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			res, err := a.Feeds.ImportFeeds(cmd.Context(), payload, a.teacher(teacher))
			if res != nil && len(res.Skipped) > 0 && err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatSkipped(res.Skipped))
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")

	return cmd
}
