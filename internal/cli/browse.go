package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/syllabus/internal/app"
	"github.com/alexanderramin/syllabus/internal/cli/formatter"
	"github.com/alexanderramin/syllabus/internal/domain"
	"github.com/alexanderramin/syllabus/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *App) *cobra.Command {
	var month monthFlag
	var teacher string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse months interactively (←/→ to navigate, r to reload, q to quit)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.calendarFor(teacher)
			if err != nil {
				return err
			}
			m := month.resolve(svc)

			p := tea.NewProgram(newBrowseModel(cmd.Context(), svc, m),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().Var(&month, "month", "Month to start on (default current)")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher ID (default from config)")

	return cmd
}

type browseKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reload, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Reload, k.Help, k.Quit}}
}

var browseKeys = browseKeyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// monthLoadedMsg carries the outcome of one load request. seq identifies
// the request so that answers to superseded requests can be dropped. The
// rendered month travels in result.View, never read back from the service.
type monthLoadedMsg struct {
	seq    int
	month  domain.Month
	result *app.LoadResult
	err    error
}

// maxStaleRetries bounds reissues of the latest request when another
// client of the service overtook it.
const maxStaleRetries = 3

type browseModel struct {
	ctx context.Context
	svc service.CalendarService

	month   domain.Month
	seq     int
	retries int
	loading bool
	initCmd tea.Cmd

	view   *app.CalendarView
	result *app.LoadResult
	err    error

	keys    browseKeyMap
	help    help.Model
	spinner spinner.Model
}

func newBrowseModel(ctx context.Context, svc service.CalendarService, month domain.Month) browseModel {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := browseModel{
		ctx:     ctx,
		svc:     svc,
		keys:    browseKeys,
		help:    help.New(),
		spinner: sp,
	}
	m.initCmd = m.load(month)
	return m
}

// load starts a request for month. Only the latest request is displayed.
// The service generation is claimed here, on the update goroutine, so the
// newest request also wins inside the service whatever order the commands
// run in.
func (m *browseModel) load(month domain.Month) tea.Cmd {
	m.seq++
	m.retries = 0
	m.err = nil
	return m.issue(month)
}

func (m *browseModel) issue(month domain.Month) tea.Cmd {
	m.month = month
	m.loading = true

	ticket := m.svc.Begin(month)
	ctx, svc, seq := m.ctx, m.svc, m.seq
	return func() tea.Msg {
		res, err := svc.Complete(ctx, ticket)
		return monthLoadedMsg{seq: seq, month: month, result: res, err: err}
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.spinner.Tick)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m, m.load(m.month.Prev())
		case key.Matches(msg, m.keys.Next):
			return m, m.load(m.month.Next())
		case key.Matches(msg, m.keys.Reload):
			return m, m.load(m.month)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case monthLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if errors.Is(msg.err, service.ErrStaleLoad) && m.retries < maxStaleRetries {
			m.retries++
			return m, m.issue(m.month)
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		m.view = msg.result.View
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	title := formatter.StyleHeader.Render(strings.ToUpper(m.month.Label()))
	if m.loading {
		title += " " + m.spinner.View()
	}
	b.WriteString(title + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.view != nil && m.view.Month == m.month:
		if m.view.Unavailable {
			b.WriteString(formatter.StyleRed.Render("Calendar feeds unavailable.") + "\n\n")
		}
		b.WriteString(formatter.FormatHeatMap(m.view))
		b.WriteString("\n")
		b.WriteString(formatter.FormatSummary(m.view))
		if m.result != nil && len(m.result.Skipped) > 0 {
			b.WriteString("\n" + formatter.FormatSkipped(m.result.Skipped))
		}
	default:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
