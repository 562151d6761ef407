package calendar

import (
	"testing"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSlots_OverrideTakesPrecedence(t *testing.T) {
	rec := domain.SlotAssignmentRecord{
		Date:             date("2024-06-03"),
		ScheduledSlotIDs: []string{"s1", "s2"},
		Slots: []domain.Slot{
			checked("s1", ""),
			checked("s3", ""),
		},
	}
	assert.Equal(t, []string{"s1", "s2"}, SelectSlots(rec))
}

func TestSelectSlots_FallsBackToCheckedApprovedOrUngated(t *testing.T) {
	rec := domain.SlotAssignmentRecord{
		Date: date("2024-06-03"),
		Slots: []domain.Slot{
			checked("s1", domain.SlotApproved),
			checked("s2", domain.SlotPending),
			{ID: "s3", Checked: false},
		},
	}
	assert.Equal(t, []string{"s1"}, SelectSlots(rec))
}

func TestSelectSlots_UngatedCheckedSlotCounts(t *testing.T) {
	rec := domain.SlotAssignmentRecord{
		Slots: []domain.Slot{
			checked("s4", ""),
			checked("s5", domain.SlotRejected),
			{ID: "s6", Checked: false, Status: domain.SlotApproved},
		},
	}
	assert.Equal(t, []string{"s4"}, SelectSlots(rec))
}

func TestSelectSlots_EmptyOverrideFallsThrough(t *testing.T) {
	rec := domain.SlotAssignmentRecord{
		ScheduledSlotIDs: []string{},
		Slots:            []domain.Slot{checked("s1", domain.SlotApproved)},
	}
	assert.Equal(t, []string{"s1"}, SelectSlots(rec))
}

func TestSelectSlots_DeduplicatesKeepingFirstOccurrence(t *testing.T) {
	rec := domain.SlotAssignmentRecord{ScheduledSlotIDs: []string{"s2", "s1", "s2", "", "s3"}}
	assert.Equal(t, []string{"s2", "s1", "s3"}, SelectSlots(rec))
}

func TestNormalizeSlots_OmitsDaysWithoutSlots(t *testing.T) {
	model := NormalizeSlots([]domain.SlotAssignmentRecord{
		{Date: date("2024-06-03"), Slots: []domain.Slot{{ID: "s1", Checked: false}}},
		{Date: date("2024-06-04"), Slots: []domain.Slot{checked("s1", domain.SlotPending)}},
		{Date: date("2024-06-05"), Slots: []domain.Slot{checked("s1", "")}},
	})
	require.Len(t, model, 1)
	assert.Contains(t, model, "2024-06-05")
}

func TestNormalizeSlots_LaterRecordOverwritesSameDate(t *testing.T) {
	model := NormalizeSlots([]domain.SlotAssignmentRecord{
		{
			Date:            date("2024-06-03"),
			Slots:           []domain.Slot{checked("s1", ""), checked("s2", "")},
			ScheduleEntries: []domain.ScheduleEntry{{SubjectName: "Math", SlotIDs: []string{"s1", "s2"}}},
		},
		{
			Date:             at("2024-06-03", 9),
			ScheduledSlotIDs: []string{"s7"},
		},
	})
	require.Contains(t, model, "2024-06-03")
	day := model["2024-06-03"]
	assert.Equal(t, []string{"s7"}, day.AssignedSlotIDs)
	assert.Nil(t, day.ScheduleEntries, "entries are overwritten, not merged")
	assert.Equal(t, date("2024-06-03"), day.Date, "time of day is stripped")
}

func TestNormalizeSlots_LaterEmptyRecordClearsDate(t *testing.T) {
	model := NormalizeSlots([]domain.SlotAssignmentRecord{
		{Date: date("2024-06-03"), Slots: []domain.Slot{checked("s1", ""), checked("s2", "")}},
		{Date: date("2024-06-04"), ScheduledSlotIDs: []string{"s3"}},
		{Date: at("2024-06-03", 14), Slots: []domain.Slot{checked("s1", domain.SlotRejected)}},
	})
	assert.NotContains(t, model, "2024-06-03")
	assert.Contains(t, model, "2024-06-04")
}

func TestNormalizeSlots_CopiesEntries(t *testing.T) {
	entries := []domain.ScheduleEntry{{SubjectName: "Physics", Batch: strPtr("B1"), SlotIDs: []string{"s1"}}}
	model := NormalizeSlots([]domain.SlotAssignmentRecord{
		{Date: date("2024-06-03"), ScheduledSlotIDs: []string{"s1"}, ScheduleEntries: entries},
	})
	entries[0].SlotIDs[0] = "mutated"
	assert.Equal(t, "s1", model["2024-06-03"].ScheduleEntries[0].SlotIDs[0])
}
