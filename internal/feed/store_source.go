package feed

import (
	"context"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/repository"
	"golang.org/x/sync/errgroup"
)

// StoreSource serves both feeds from the local repositories.
type StoreSource struct {
	assignments repository.SlotAssignmentRepo
	unitLogs    repository.UnitLogRepo
}

// NewStoreSource creates a StoreSource over the given repositories.
func NewStoreSource(assignments repository.SlotAssignmentRepo, unitLogs repository.UnitLogRepo) *StoreSource {
	return &StoreSource{assignments: assignments, unitLogs: unitLogs}
}

// FetchCalendarFeeds reads both feeds concurrently and returns only after
// both have completed.
func (s *StoreSource) FetchCalendarFeeds(ctx context.Context, q FeedQuery) (*Feeds, error) {
	assignments, logs, err := s.fetchRows(ctx, q)
	if err != nil {
		return nil, unavailable("store", err)
	}
	return NewFeeds(assignments, logs, q.Location), nil
}

// FetchPayload returns the stored rows for q in wire form.
func (s *StoreSource) FetchPayload(ctx context.Context, q FeedQuery) (*Payload, error) {
	assignments, logs, err := s.fetchRows(ctx, q)
	if err != nil {
		return nil, unavailable("store", err)
	}
	return Encode(assignments, logs), nil
}

func (s *StoreSource) fetchRows(ctx context.Context, q FeedQuery) ([]*domain.SlotAssignment, []*domain.UnitLog, error) {
	var (
		assignments []*domain.SlotAssignment
		logs        []*domain.UnitLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assignments, err = s.assignments.ListBetween(gctx, q.TeacherID, q.StartDay(), q.EndDay())
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.unitLogs.ListBetween(gctx, q.TeacherID, q.Start, q.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return assignments, logs, nil
}
