package httpapi

import (
	"net/http"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/feed"
	"github.com/labstack/echo/v4"
)

func (s *Server) monthParam(c echo.Context) (domain.Month, error) {
	raw := strings.TrimSpace(c.QueryParam("month"))
	if raw == "" {
		return s.opts.Calendar.ActiveMonth(), nil
	}
	m, err := domain.ParseMonth(raw)
	if err != nil {
		return domain.Month{}, &app.RequestError{Code: app.ErrInvalidMonth, Message: err.Error()}
	}
	return m, nil
}

func (s *Server) getCalendar(c echo.Context) error {
	month, err := s.monthParam(c)
	if err != nil {
		return err
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	res, err := s.opts.Calendar.Load(c.Request().Context(), month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCalendarJSON(res.View, res))
}

func (s *Server) navigate(c echo.Context) error {
	dir := domain.Direction(strings.TrimSpace(c.QueryParam("direction")))

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	res, err := s.opts.Calendar.Navigate(c.Request().Context(), dir)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCalendarJSON(res.View, res))
}

func (s *Server) getPlanning(c echo.Context) error {
	month, err := s.monthParam(c)
	if err != nil {
		return err
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	res, err := s.opts.Calendar.Load(c.Request().Context(), month)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPlanningJSON(s.opts.Calendar.PlanningView(month), res))
}

func (s *Server) teacherParam(c echo.Context) string {
	if t := strings.TrimSpace(c.QueryParam("teacher")); t != "" {
		return t
	}
	return s.opts.Teacher
}

func (s *Server) importFeeds(c echo.Context) error {
	payload, err := feed.ReadPayload(c.Request().Body)
	if err != nil {
		return badRequest("%v", err)
	}
	res, err := s.opts.Feeds.ImportFeeds(c.Request().Context(), payload, s.teacherParam(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newImportJSON(res))
}

// exportFeeds serves the upstream calendar-feeds contract from the local
// store, so another instance can use this one as its HTTP feed source.
func (s *Server) exportFeeds(c echo.Context) error {
	start, err := domain.ParseDateKey(c.QueryParam("start"), s.opts.Location)
	if err != nil {
		return &app.RequestError{Code: app.ErrInvalidDate, Message: "start: " + err.Error()}
	}
	end, err := domain.ParseDateKey(c.QueryParam("end"), s.opts.Location)
	if err != nil {
		return &app.RequestError{Code: app.ErrInvalidDate, Message: "end: " + err.Error()}
	}
	if end.Before(start) {
		return &app.RequestError{Code: app.ErrInvalidDate, Message: "end is before start"}
	}

	q := feed.FeedQuery{
		TeacherID: s.teacherParam(c),
		Start:     start,
		End:       end.AddDate(0, 0, 1).Add(-1),
		Location:  s.opts.Location,
	}
	payload, err := s.opts.Feeds.ExportFeeds(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feed.Envelope{Success: true, Data: *payload})
}
