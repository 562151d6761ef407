package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/spf13/cobra"
)

func newAssignCmd(a *App) *cobra.Command {
	var (
		date      string
		teacher   string
		slots     []string
		scheduled []string
		entries   []string
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Record the approved slots of one day",
		Example: `  syllabus assign --date 2024-06-10 --slot s1,s2
  syllabus assign --date 2024-06-10 --slot s1,s2,s3 --entry "Physics@B1=s1,s2" --entry "Chemistry=s3"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = domain.DateKey(a.now())
			}
			req := app.AssignSlotsRequest{
				TeacherID:        a.teacher(teacher),
				Day:              date,
				SlotIDs:          slots,
				ScheduledSlotIDs: scheduled,
			}
			for _, raw := range entries {
				e, err := parseEntry(raw)
				if err != nil {
					return err
				}
				req.Entries = append(req.Entries, e)
			}

			assignment, err := a.Feeds.AssignSlots(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAssignment(assignment))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to assign (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")
	cmd.Flags().StringSliceVar(&slots, "slot", nil, "Approved slot IDs (repeatable or comma-separated)")
	cmd.Flags().StringSliceVar(&scheduled, "scheduled", nil, "Explicit scheduled slot IDs, overriding --slot selection")
	cmd.Flags().StringArrayVar(&entries, "entry", nil, "Schedule entry SUBJECT[@BATCH]=SLOT,... (repeatable)")

	return cmd
}

// parseEntry parses SUBJECT[@BATCH]=SLOT,SLOT.
func parseEntry(raw string) (domain.ScheduleEntry, error) {
	head, ids, ok := strings.Cut(raw, "=")
	if !ok {
		return domain.ScheduleEntry{}, fmt.Errorf("invalid --entry %q (expected SUBJECT[@BATCH]=SLOT,...)", raw)
	}

	var e domain.ScheduleEntry
	subject, batch, hasBatch := strings.Cut(head, "@")
	e.SubjectName = strings.TrimSpace(subject)
	if batch = strings.TrimSpace(batch); hasBatch && batch != "" {
		e.Batch = &batch
	}
	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			e.SlotIDs = append(e.SlotIDs, id)
		}
	}
	if len(e.SlotIDs) == 0 {
		return domain.ScheduleEntry{}, fmt.Errorf("invalid --entry %q: no slot ids", raw)
	}
	return e, nil
}
