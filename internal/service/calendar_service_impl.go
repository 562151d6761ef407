package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/calendar"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/alexanderramin/syllabus/internal/logger"
)

// ErrStaleLoad is returned by a load that was superseded by a newer one
// before it finished. Its result has been discarded.
var ErrStaleLoad = errors.New("calendar load superseded by a newer request")

// CalendarOption configures a CalendarService.
type CalendarOption func(*calendarService)

// WithClock overrides the source of the current time.
func WithClock(now func() time.Time) CalendarOption {
	return func(s *calendarService) {
		s.now = now
	}
}

// WithObserver sets the use-case observer.
func WithObserver(obs UseCaseObserver) CalendarOption {
	return func(s *calendarService) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{obs})
	}
}

type calendarService struct {
	source    feed.Source
	teacherID string
	loc       *time.Location
	now       func() time.Time
	observer  UseCaseObserver

	mu          sync.RWMutex
	generation  uint64
	active      domain.Month
	model       calendar.Model
	unavailable bool
}

// NewCalendarService creates a CalendarService whose active month starts
// at the current month in loc. Nothing is loaded until Load is called.
func NewCalendarService(source feed.Source, teacherID string, loc *time.Location, opts ...CalendarOption) CalendarService {
	s := &calendarService{
		source:    source,
		teacherID: teacherID,
		loc:       domain.LocationOrLocal(loc),
		now:       time.Now,
		observer:  NoopUseCaseObserver{},
		model:     calendar.Model{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.active = domain.MonthOf(s.now().In(s.loc))
	return s
}

// LoadTicket is a claimed load generation for one month.
type LoadTicket struct {
	Month      domain.Month
	Generation uint64
}

func (s *calendarService) Load(ctx context.Context, month domain.Month) (*app.LoadResult, error) {
	return s.Complete(ctx, s.Begin(month))
}

func (s *calendarService) Begin(month domain.Month) LoadTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.active = month
	return LoadTicket{Month: month, Generation: s.generation}
}

func (s *calendarService) Complete(ctx context.Context, t LoadTicket) (*app.LoadResult, error) {
	start := time.Now()
	month, gen := t.Month, t.Generation
	fields := map[string]any{"month": month.String(), "generation": gen}

	if s.superseded(gen) {
		observe(ctx, s.observer, "calendar.load", start, ErrStaleLoad, fields)
		return nil, ErrStaleLoad
	}

	result := &app.LoadResult{Month: month, Generation: gen}
	model := calendar.Model{}

	feeds, err := s.source.FetchCalendarFeeds(ctx, feed.QueryForMonth(s.teacherID, month, s.loc))
	if err != nil {
		result.Unavailable = true
		result.Reason = err.Error()
		logger.Warn("calendar feeds unavailable", "month", month.String(), "err", err)
	} else {
		model = calendar.Build(feeds.SlotAssignments, feeds.UnitLogs, s.loc)
		result.Skipped = feeds.Skipped
		for _, rec := range feeds.Skipped {
			logger.Warn("skipped malformed record", "kind", rec.Kind, "index", rec.Index, "reason", rec.Reason)
		}
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		observe(ctx, s.observer, "calendar.load", start, ErrStaleLoad, fields)
		return nil, ErrStaleLoad
	}
	s.model = model
	s.unavailable = result.Unavailable
	s.mu.Unlock()

	result.Days = len(model)
	result.LoadedAt = s.now()
	// model is no longer written once installed, so the view can be built
	// outside the lock.
	result.View = s.buildView(model, result.Unavailable, month)
	fields["days"] = result.Days
	fields["unavailable"] = result.Unavailable
	fields["skipped"] = len(result.Skipped)
	observe(ctx, s.observer, "calendar.load", start, nil, fields)
	return result, nil
}

func (s *calendarService) superseded(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen != s.generation
}

func (s *calendarService) Navigate(ctx context.Context, dir domain.Direction) (*app.LoadResult, error) {
	if _, err := domain.ParseDirection(string(dir)); err != nil {
		return nil, &app.RequestError{Code: app.ErrInvalidDirection, Message: err.Error()}
	}
	next := s.ActiveMonth().Navigate(dir)
	logger.Debug("navigating", "direction", dir, "month", next.String())
	return s.Load(ctx, next)
}

func (s *calendarService) ActiveMonth() domain.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *calendarService) CalendarModel() calendar.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model.Clone()
}

func (s *calendarService) PlanningView(month domain.Month) *app.PlanningView {
	s.mu.RLock()
	model, unavailable := s.model, s.unavailable
	s.mu.RUnlock()

	now := s.now().In(s.loc)
	p := calendar.Project(model, month, now, s.loc)
	return &app.PlanningView{
		Month:       month,
		Today:       domain.StartOfDay(now),
		Scheduled:   p.Scheduled,
		History:     p.History,
		TotalHours:  p.TotalHours(),
		Issues:      p.Issues,
		Unavailable: unavailable,
	}
}

func (s *calendarService) CalendarView(month domain.Month) *app.CalendarView {
	s.mu.RLock()
	model, unavailable := s.model, s.unavailable
	s.mu.RUnlock()
	return s.buildView(model, unavailable, month)
}

func (s *calendarService) buildView(model calendar.Model, unavailable bool, month domain.Month) *app.CalendarView {
	now := s.now().In(s.loc)
	todayKey := domain.DateKey(now)
	summary := calendar.Summarize(model, month, now, s.loc)

	view := &app.CalendarView{Month: month, Summary: summary, Unavailable: unavailable}
	for _, week := range calendar.MonthGrid(month, s.loc) {
		var row [7]app.DayCell
		for i, date := range week {
			key := domain.DateKey(date)
			cell := app.DayCell{
				Date:    date,
				Key:     key,
				InMonth: date.Month() == month.Month && date.Year() == month.Year,
				Today:   key == todayKey,
			}
			if day, ok := model[key]; ok && cell.InMonth {
				cell.Hours = day.Hours()
				cell.Heat = calendar.HeatLevel(cell.Hours, summary.MaxDayHours)
				cell.CompletedUnits = day.CompletedUnits
				cell.InProgressUnits = day.InProgressUnits
				cell.TotalUnits = day.TotalUnits
			}
			row[i] = cell
		}
		view.Weeks = append(view.Weeks, row)
	}
	return view
}
