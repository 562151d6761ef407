package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/alexanderramin/syllabus/internal/repository"
	"github.com/alexanderramin/syllabus/internal/testutil"
)

var (
	testLoc  = time.FixedZone("UTC+7", 7*60*60)
	june2024 = domain.Month{Year: 2024, Month: time.June}
	july2024 = domain.Month{Year: 2024, Month: time.July}
	// 2024-06-15 09:00 in testLoc.
	fixedNow = time.Date(2024, 6, 15, 9, 0, 0, 0, testLoc)
)

func fixedClock() time.Time { return fixedNow }

// setupStore wires repositories, a unit of work and a store-backed source
// over an in-memory database.
func setupStore(t *testing.T) (repository.SlotAssignmentRepo, repository.UnitLogRepo, db.UnitOfWork, *feed.StoreSource) {
	t.Helper()
	h := testutil.NewTestHandle(t)
	assignments := repository.NewSQLSlotAssignmentRepo(h.Conn())
	units := repository.NewSQLUnitLogRepo(h.Conn())
	return assignments, units, h.UnitOfWork(), feed.NewStoreSource(assignments, units)
}

// stubSource returns canned feeds per month and can block until released.
type stubSource struct {
	mu       sync.Mutex
	feeds    map[domain.Month]*feed.Feeds
	err      error
	gates    map[domain.Month]chan struct{}
	started  chan domain.Month
	requests []feed.FeedQuery
}

func newStubSource() *stubSource {
	return &stubSource{
		feeds:   map[domain.Month]*feed.Feeds{},
		gates:   map[domain.Month]chan struct{}{},
		started: make(chan domain.Month, 16),
	}
}

// hold makes fetches for m wait until the returned func is called.
func (s *stubSource) hold(m domain.Month) func() {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[m] = gate
	s.mu.Unlock()
	return func() { close(gate) }
}

func (s *stubSource) FetchCalendarFeeds(ctx context.Context, q feed.FeedQuery) (*feed.Feeds, error) {
	m := domain.MonthOf(q.Start.In(q.Location))
	s.mu.Lock()
	s.requests = append(s.requests, q)
	gate := s.gates[m]
	f, err := s.feeds[m], s.err
	s.mu.Unlock()

	s.started <- m
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = &feed.Feeds{}
	}
	return f, nil
}

func dayRecord(y int, m time.Month, d int, slotIDs ...string) domain.SlotAssignmentRecord {
	rec := domain.SlotAssignmentRecord{Date: time.Date(y, m, d, 0, 0, 0, 0, testLoc)}
	for _, id := range slotIDs {
		rec.Slots = append(rec.Slots, domain.Slot{ID: id, Checked: true})
	}
	return rec
}
