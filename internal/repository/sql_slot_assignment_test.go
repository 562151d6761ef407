package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignmentRepo(t *testing.T) *SQLSlotAssignmentRepo {
	t.Helper()
	return NewSQLSlotAssignmentRepo(testutil.NewTestDB(t))
}

func TestSlotAssignmentRepo_UpsertAndGetByDate(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	batch := "B1"
	a := testutil.NewTestAssignment("2024-06-05",
		testutil.WithTeacher("t1"),
		testutil.WithSlots("s1", "s2", "s3"),
		testutil.WithSlotStatus("s3", domain.SlotPending),
		testutil.WithEntry("Math", &batch, "s1", "s2"),
	)
	require.NoError(t, repo.Upsert(ctx, a))

	got, err := repo.GetByDate(ctx, "t1", "2024-06-05")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "2024-06-05", got.Day)
	require.Len(t, got.Slots, 3)
	assert.Equal(t, domain.SlotPending, got.Slots[2].Status)
	assert.True(t, got.Slots[0].Checked)
	require.Len(t, got.ScheduleEntries, 1)
	assert.Equal(t, "Math", got.ScheduleEntries[0].SubjectName)
	require.NotNil(t, got.ScheduleEntries[0].Batch)
	assert.Equal(t, "B1", *got.ScheduleEntries[0].Batch)
	assert.Equal(t, []string{"s1", "s2"}, got.ScheduleEntries[0].SlotIDs)
	assert.Empty(t, got.ScheduledSlotIDs)
}

func TestSlotAssignmentRepo_UpsertReplacesSameDay(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	first := testutil.NewTestAssignment("2024-06-05", testutil.WithTeacher("t1"))
	require.NoError(t, repo.Upsert(ctx, first))

	second := testutil.NewTestAssignment("2024-06-05",
		testutil.WithTeacher("t1"),
		testutil.WithScheduledSlotIDs("s9"),
	)
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID, "existing row id is kept")

	got, err := repo.GetByDate(ctx, "t1", "2024-06-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"s9"}, got.ScheduledSlotIDs)

	list, err := repo.ListBetween(ctx, "t1", "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSlotAssignmentRepo_UpsertRejectsBadDay(t *testing.T) {
	repo := newAssignmentRepo(t)

	err := repo.Upsert(context.Background(), testutil.NewTestAssignment("06/05/2024"))
	require.Error(t, err)
}

func TestSlotAssignmentRepo_GetByDate_NotFound(t *testing.T) {
	repo := newAssignmentRepo(t)

	_, err := repo.GetByDate(context.Background(), "t1", "2024-06-05")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlotAssignmentRepo_ListBetween(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	for _, tc := range []struct{ teacher, day string }{
		{"t1", "2024-05-31"},
		{"t1", "2024-06-10"},
		{"t1", "2024-06-01"},
		{"t2", "2024-06-15"},
		{"t1", "2024-07-01"},
	} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestAssignment(tc.day, testutil.WithTeacher(tc.teacher))))
	}

	list, err := repo.ListBetween(ctx, "t1", "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-06-01", list[0].Day)
	assert.Equal(t, "2024-06-10", list[1].Day)

	all, err := repo.ListBetween(ctx, "", "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSlotAssignmentRepo_Delete(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestAssignment("2024-06-05")))
	require.NoError(t, repo.Delete(ctx, "", "2024-06-05"))

	_, err := repo.GetByDate(ctx, "", "2024-06-05")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "", "2024-06-05"), ErrNotFound)
}

func TestSlotAssignment_RecordRoundTrip(t *testing.T) {
	repo := newAssignmentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestAssignment("2024-06-05",
		testutil.WithEntry("Physics", nil, "s1"))))
	got, err := repo.GetByDate(ctx, "", "2024-06-05")
	require.NoError(t, err)

	rec, err := got.Record(testLoc)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", domain.DateKey(rec.Date))
	assert.Equal(t, testLoc, rec.Date.Location())
	assert.Nil(t, rec.ScheduleEntries[0].Batch)
}
