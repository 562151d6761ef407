package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/pflag"
)

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(form *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(form)
	}
	return form.Run()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().In(a.location())
	}
	return time.Now().In(a.location())
}

func (a *App) location() *time.Location {
	return domain.LocationOrLocal(a.Location)
}

func (a *App) teacher(flag string) string {
	if t := strings.TrimSpace(flag); t != "" {
		return t
	}
	return a.Teacher
}

// calendarFor returns the calendar service for teacher, which is the
// shared one unless another teacher is requested.
func (a *App) calendarFor(teacher string) (service.CalendarService, error) {
	teacher = strings.TrimSpace(teacher)
	if teacher == "" || teacher == a.Teacher {
		return a.Calendar, nil
	}
	if a.CalendarFor == nil {
		return nil, fmt.Errorf("teacher %q: only the configured teacher is available", teacher)
	}
	return a.CalendarFor(teacher), nil
}

// monthFlag is a --month value in YYYY-MM form. Unset means the
// calendar service's active month.
type monthFlag struct {
	month domain.Month
	set   bool
}

var _ pflag.Value = (*monthFlag)(nil)

func (f *monthFlag) String() string {
	if !f.set {
		return ""
	}
	return f.month.String()
}

func (f *monthFlag) Set(s string) error {
	m, err := domain.ParseMonth(strings.TrimSpace(s))
	if err != nil {
		return &app.RequestError{Code: app.ErrInvalidMonth, Message: err.Error()}
	}
	f.month, f.set = m, true
	return nil
}

func (f *monthFlag) Type() string { return "YYYY-MM" }

func (f *monthFlag) resolve(svc service.CalendarService) domain.Month {
	if !f.set {
		return svc.ActiveMonth()
	}
	return f.month
}
