package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/alexanderramin/syllabus/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T, env *testEnv) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBrowseModel(context.Background(), env.app.Calendar, june2024), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func browseState(t *testing.T, d *teatest.Driver) browseModel {
	t.Helper()
	m, ok := d.Model.(browseModel)
	require.True(t, ok)
	return m
}

func TestBrowse_InitialLoad(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "assign", "--date", "2024-06-10", "--slot", "s1,s2")
	require.NoError(t, err)

	d := newBrowseDriver(t, env)
	m := browseState(t, d)
	assert.False(t, m.loading)
	require.NotNil(t, m.view)
	assert.Equal(t, june2024, m.view.Month)

	view := d.View()
	assert.Contains(t, view, "JUNE 2024")
	assert.Contains(t, view, "2 hrs")
	assert.Contains(t, view, "next month")
}

func TestBrowse_Navigate(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)

	d.PressRight()
	assert.Contains(t, d.View(), "JULY 2024")
	assert.Equal(t, domain.Month{Year: 2024, Month: time.July}, env.app.Calendar.ActiveMonth())

	d.PressKey('h')
	d.PressKey('h')
	assert.Contains(t, d.View(), "MAY 2024")
	assert.Equal(t, domain.Month{Year: 2024, Month: time.May}, browseState(t, d).view.Month)

	d.PressLeft()
	d.PressKey('l')
	assert.Equal(t, domain.Month{Year: 2024, Month: time.May}, env.app.Calendar.ActiveMonth())
}

func TestBrowse_ReloadPicksUpNewData(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)
	assert.Contains(t, d.View(), "0 hrs")

	_, err := executeCmd(t, env.app, "assign", "--date", "2024-06-20", "--slot", "s1")
	require.NoError(t, err)

	d.PressKey('r')
	assert.Contains(t, d.View(), "1 hr")
}

func TestBrowse_DropsSupersededResults(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)
	d.PressRight()
	current := browseState(t, d)
	require.Equal(t, 2, current.seq)

	// An answer to the first request arriving late must not replace July.
	d.Send(monthLoadedMsg{seq: 1, month: june2024})
	assert.Equal(t, time.July, browseState(t, d).view.Month.Month)

	d.Send(monthLoadedMsg{seq: current.seq, month: june2024, err: service.ErrStaleLoad})
	m := browseState(t, d)
	assert.Equal(t, time.July, m.view.Month.Month)
	assert.NoError(t, m.err)
}

// step feeds msg to m without running the returned Cmd, so tests control
// when and in which order load commands execute.
func step(t *testing.T, m browseModel, msg tea.Msg) (browseModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(browseModel)
	require.True(t, ok)
	return next, cmd
}

func loadedBrowseModel(t *testing.T, env *testEnv) browseModel {
	t.Helper()
	m := newBrowseModel(context.Background(), env.app.Calendar, june2024)
	m, _ = step(t, m, m.initCmd())
	require.False(t, m.loading)
	return m
}

func TestBrowse_OutOfOrderCommandsShowLatestMonth(t *testing.T) {
	august := domain.Month{Year: 2024, Month: time.August}

	for _, julyFirst := range []bool{false, true} {
		env := testApp(t)
		_, err := executeCmd(t, env.app, "assign", "--date", "2024-08-05", "--slot", "s1,s2,s3")
		require.NoError(t, err)

		m := loadedBrowseModel(t, env)
		m, julyCmd := step(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, augCmd := step(t, m, tea.KeyMsg{Type: tea.KeyRight})

		var julyMsg, augMsg tea.Msg
		if julyFirst {
			julyMsg = julyCmd()
			augMsg = augCmd()
		} else {
			augMsg = augCmd()
			julyMsg = julyCmd()
		}
		m, _ = step(t, m, augMsg)
		m, _ = step(t, m, julyMsg)

		assert.False(t, m.loading, "julyFirst=%v", julyFirst)
		require.NotNil(t, m.view)
		assert.Equal(t, august, m.month)
		assert.Equal(t, august, m.view.Month)
		assert.Equal(t, 3, m.view.Summary.TotalHours, "julyFirst=%v", julyFirst)
		assert.Equal(t, august, env.app.Calendar.ActiveMonth())
		assert.Contains(t, m.View(), "AUGUST 2024")
	}
}

func TestBrowse_LatestRequestRetriedWhenOvertaken(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "assign", "--date", "2024-07-01", "--slot", "s1,s2")
	require.NoError(t, err)

	m := loadedBrowseModel(t, env)
	m, julyCmd := step(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// Another client of the same service claims a newer generation.
	env.app.Calendar.Begin(june2024)

	msg := julyCmd()
	loaded, ok := msg.(monthLoadedMsg)
	require.True(t, ok)
	require.ErrorIs(t, loaded.err, service.ErrStaleLoad)

	m, retry := step(t, m, msg)
	require.NotNil(t, retry)
	assert.True(t, m.loading)

	m, _ = step(t, m, retry())
	assert.False(t, m.loading)
	assert.NoError(t, m.err)
	require.NotNil(t, m.view)
	assert.Equal(t, time.July, m.view.Month.Month)
	assert.Equal(t, 2, m.view.Summary.TotalHours)
}

func TestBrowse_InFlightViewHidesPreviousMonth(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "assign", "--date", "2024-06-10", "--slot", "s1,s2,s3,s4,s5,s6,s7")
	require.NoError(t, err)

	m := loadedBrowseModel(t, env)
	assert.Contains(t, m.View(), "7 hrs")

	m, julyCmd := step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	view := m.View()
	assert.Contains(t, view, "JULY 2024")
	assert.Contains(t, view, "Loading...")
	assert.NotContains(t, view, "7 hrs")
	assert.NotContains(t, view, "Teaching days")

	m, _ = step(t, m, julyCmd())
	assert.NotContains(t, m.View(), "Loading...")
	assert.NotContains(t, m.View(), "7 hrs")
}

func TestBrowse_ShowsLoadErrors(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)
	m := browseState(t, d)

	d.Send(monthLoadedMsg{seq: m.seq, month: june2024, err: errors.New("boom")})
	assert.Contains(t, d.View(), "Error: boom")
}

func TestBrowse_HelpToggle(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)
	assert.False(t, browseState(t, d).help.ShowAll)
	d.PressKey('?')
	assert.True(t, browseState(t, d).help.ShowAll)
}

func TestBrowse_Quit(t *testing.T) {
	env := testApp(t)
	d := newBrowseDriver(t, env)
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newBrowseDriver(t, env)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
