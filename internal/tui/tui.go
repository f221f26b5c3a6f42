// Package tui is the Bubble Tea front end. The root model shows one screen
// per application state and swaps it whenever the state changes.
package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/home"
	"github.com/abhisek/mathdrill/internal/screens/mistakes"
	"github.com/abhisek/mathdrill/internal/screens/session"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Options configures the front end.
type Options struct {
	// ExportDir receives result exports, notebook exports and worksheets.
	ExportDir string

	// Timings of the practice and remedial screens.
	Timings session.Timings
}

// Model is the root Bubble Tea model.
type Model struct {
	app    *app.Context
	opts   Options
	state  app.State
	active screen.Screen
	width  int
	height int
}

// New creates a Model showing the screen for a's current state.
func New(a *app.Context, opts Options) Model {
	m := Model{app: a, opts: opts, state: a.State()}
	m.active = m.screenFor(m.state)
	return m
}

func (m Model) screenFor(s app.State) screen.Screen {
	switch s {
	case app.Practice:
		return session.New(m.app, m.opts.Timings)
	case app.Result:
		return summary.New(m.app, m.opts.ExportDir)
	case app.WrongPractice:
		return mistakes.New(m.app, m.opts.ExportDir, m.opts.Timings.FeedbackDelay)
	}
	return home.New(m.app)
}

func (m Model) Init() tea.Cmd {
	return m.active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)

	if s := m.app.State(); s != m.state {
		m.state = s
		m.active = m.screenFor(s)
		cmd = tea.Batch(cmd, m.active.Init())
	}
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame around the active screen.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.active.Title(), layout.HeaderStats{
		ToReview: m.app.Notebook().Snapshot().Unmastered,
		Sessions: m.app.History().Len(),
	}, m.width)

	hints := app.ViewFor(m.state).Hints
	if p, ok := m.active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.active.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(a *app.Context, opts Options) error {
	p := tea.NewProgram(New(a, opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
