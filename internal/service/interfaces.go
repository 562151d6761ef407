package service

import (
	"context"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/calendar"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
)

// CalendarService owns the in-memory calendar model and its load cycle.
type CalendarService interface {
	// Load fetches both feeds for month and replaces the model. A feed
	// failure clears the model and is reported in the result, not returned.
	// ErrStaleLoad is returned when a newer load started meanwhile.
	Load(ctx context.Context, month domain.Month) (*app.LoadResult, error)
	// Begin claims the next load generation and makes month active without
	// fetching. Complete runs the fetch for a claimed ticket. Claiming
	// synchronously fixes the order of competing loads at request time.
	Begin(month domain.Month) LoadTicket
	Complete(ctx context.Context, t LoadTicket) (*app.LoadResult, error)
	// Navigate moves the active month one step and reloads.
	Navigate(ctx context.Context, dir domain.Direction) (*app.LoadResult, error)
	ActiveMonth() domain.Month
	// CalendarModel returns a copy of the current model.
	CalendarModel() calendar.Model
	PlanningView(month domain.Month) *app.PlanningView
	CalendarView(month domain.Month) *app.CalendarView
}

// FeedService writes to the local feed store.
type FeedService interface {
	AssignSlots(ctx context.Context, req app.AssignSlotsRequest) (*domain.SlotAssignment, error)
	LogUnit(ctx context.Context, req app.LogUnitRequest) (*domain.UnitLog, error)
	ImportFeeds(ctx context.Context, payload *feed.Payload, teacherID string) (*app.ImportResult, error)
	ExportFeeds(ctx context.Context, q feed.FeedQuery) (*feed.Payload, error)
}
