package calendar

import (
	"fmt"

	"github.com/alexanderramin/syllabus/internal/domain"
)

// PartitionIssueKind names how a day's schedule entries fail to partition
// its assigned slots.
type PartitionIssueKind string

const (
	// IssueOverlap: the slot is listed by more than one entry, so its hour
	// is counted more than once.
	IssueOverlap PartitionIssueKind = "overlap"
	// IssueUnassigned: an entry lists a slot the day does not have.
	IssueUnassigned PartitionIssueKind = "unassigned"
	// IssueUncovered: an assigned slot is listed by no entry.
	IssueUncovered PartitionIssueKind = "uncovered"
)

// PartitionIssue flags one slot of one day.
type PartitionIssue struct {
	DateKey string
	SlotID  string
	Kind    PartitionIssueKind
	Subject string
}

func (i PartitionIssue) String() string {
	if i.Subject != "" {
		return fmt.Sprintf("%s: slot %s %s (%s)", i.DateKey, i.SlotID, i.Kind, i.Subject)
	}
	return fmt.Sprintf("%s: slot %s %s", i.DateKey, i.SlotID, i.Kind)
}

// ValidatePartition checks that the day's schedule entries cover each
// assigned slot exactly once. Days without entries always pass.
func ValidatePartition(key string, day *domain.CalendarDay) []PartitionIssue {
	if len(day.ScheduleEntries) == 0 {
		return nil
	}
	assigned := make(map[string]bool, len(day.AssignedSlotIDs))
	for _, id := range day.AssignedSlotIDs {
		assigned[id] = true
	}

	var issues []PartitionIssue
	owner := make(map[string]string)
	for _, e := range day.ScheduleEntries {
		for _, id := range e.SlotIDs {
			if _, dup := owner[id]; dup {
				issues = append(issues, PartitionIssue{DateKey: key, SlotID: id, Kind: IssueOverlap, Subject: e.SubjectName})
				continue
			}
			owner[id] = e.SubjectName
			if !assigned[id] {
				issues = append(issues, PartitionIssue{DateKey: key, SlotID: id, Kind: IssueUnassigned, Subject: e.SubjectName})
			}
		}
	}
	for _, id := range day.AssignedSlotIDs {
		if _, ok := owner[id]; !ok {
			issues = append(issues, PartitionIssue{DateKey: key, SlotID: id, Kind: IssueUncovered})
		}
	}
	return issues
}
