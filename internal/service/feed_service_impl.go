package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/db"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/alexanderramin/syllabus/internal/repository"
	"github.com/google/uuid"
)

type feedService struct {
	assignments repository.SlotAssignmentRepo
	unitLogs    repository.UnitLogRepo
	uow         db.UnitOfWork
	loc         *time.Location
	observer    UseCaseObserver
}

// NewFeedService creates a FeedService. loc is the zone imported start
// times without a UTC offset are read in.
func NewFeedService(assignments repository.SlotAssignmentRepo, unitLogs repository.UnitLogRepo, uow db.UnitOfWork, loc *time.Location, observers ...UseCaseObserver) FeedService {
	return &feedService{
		assignments: assignments,
		unitLogs:    unitLogs,
		uow:         uow,
		loc:         domain.LocationOrLocal(loc),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *feedService) AssignSlots(ctx context.Context, req app.AssignSlotsRequest) (a *domain.SlotAssignment, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "feed.assign_slots", start, err, map[string]any{"day": req.Day})
	}()

	if _, perr := domain.ParseDateKey(req.Day, nil); perr != nil {
		return nil, &app.RequestError{Code: app.ErrInvalidDate, Message: perr.Error()}
	}
	slotIDs := compact(req.SlotIDs)
	scheduled := compact(req.ScheduledSlotIDs)
	if len(slotIDs) == 0 && len(scheduled) == 0 {
		return nil, &app.RequestError{Code: app.ErrMissingSlots, Message: "at least one slot id is required"}
	}

	a = &domain.SlotAssignment{
		ID:               uuid.New().String(),
		TeacherID:        req.TeacherID,
		Day:              req.Day,
		ScheduledSlotIDs: scheduled,
		ScheduleEntries:  domain.CloneEntries(req.Entries),
	}
	for _, id := range slotIDs {
		a.Slots = append(a.Slots, domain.Slot{ID: id, Checked: true, Status: domain.SlotApproved})
	}

	if err := s.assignments.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *feedService) LogUnit(ctx context.Context, req app.LogUnitRequest) (u *domain.UnitLog, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "feed.log_unit", start, err, map[string]any{"status": string(req.Status)})
	}()

	if req.StartedAt.IsZero() {
		return nil, &app.RequestError{Code: app.ErrMissingStartTime, Message: "start time is required"}
	}

	u = &domain.UnitLog{
		ID:        uuid.New().String(),
		TeacherID: req.TeacherID,
		Subject:   strings.TrimSpace(req.Subject),
		Title:     strings.TrimSpace(req.Title),
		StartedAt: req.StartedAt,
		Status:    req.Status,
		Note:      strings.TrimSpace(req.Note),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.unitLogs.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ImportFeeds validates the payload and stores every well-formed record in
// one transaction. Malformed records are skipped and reported.
func (s *feedService) ImportFeeds(ctx context.Context, payload *feed.Payload, teacherID string) (res *app.ImportResult, err error) {
	start := time.Now()
	defer func() {
		fields := map[string]any{"teacher": teacherID}
		if res != nil {
			fields["days"], fields["unit_logs"], fields["skipped"] = res.Days, res.UnitLogs, len(res.Skipped)
		}
		observe(ctx, s.observer, "feed.import", start, err, fields)
	}()

	batch := feed.Decode(payload, teacherID, s.loc)
	res = &app.ImportResult{Skipped: batch.Skipped}
	if len(batch.Assignments) == 0 && len(batch.UnitLogs) == 0 {
		if len(batch.Skipped) > 0 {
			return res, &app.RequestError{Code: app.ErrEmptyImport, Message: fmt.Sprintf("all %d records are malformed", len(batch.Skipped))}
		}
		return res, nil
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAssignments := repository.NewSQLSlotAssignmentRepo(tx)
		txUnitLogs := repository.NewSQLUnitLogRepo(tx)

		for _, a := range batch.Assignments {
			a.ID = uuid.New().String()
			if err := txAssignments.Upsert(ctx, a); err != nil {
				return fmt.Errorf("importing day %s: %w", a.Day, err)
			}
		}
		for _, u := range batch.UnitLogs {
			u.ID = uuid.New().String()
			u.CreatedAt = now
			if err := txUnitLogs.Create(ctx, u); err != nil {
				return fmt.Errorf("importing unit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Days = len(batch.Assignments)
	res.UnitLogs = len(batch.UnitLogs)
	return res, nil
}

func (s *feedService) ExportFeeds(ctx context.Context, q feed.FeedQuery) (*feed.Payload, error) {
	return feed.NewStoreSource(s.assignments, s.unitLogs).FetchPayload(ctx, q)
}

// compact trims ids and drops blanks, keeping order.
func compact(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
