// Package home is the mode selection screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/history"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const title = "M · A · T · H · D · R · I · L · L"

// recentSessions is how many history lines the home screen shows.
const recentSessions = 3

// HomeScreen lets the learner pick a practice domain or open the notebook.
type HomeScreen struct {
	app     *app.Context
	menu    components.Menu
	history *history.HistoryScreen // non-nil while the history view is open
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(a *app.Context) *HomeScreen {
	h := &HomeScreen{app: a}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: problemgen.DomainAddSub.DisplayName(), Shortcut: "1", Action: h.start(problemgen.DomainAddSub)},
		{Label: problemgen.DomainAllOps.DisplayName(), Shortcut: "2", Action: h.start(problemgen.DomainAllOps)},
		{Label: "Mistake notebook", Shortcut: "n", Action: func() tea.Cmd {
			h.app.OpenNotebook()
			return nil
		}},
		{Label: "History", Shortcut: "h", Action: func() tea.Cmd {
			h.history = history.New(h.app.History())
			return nil
		}},
		{Label: "Quit", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) start(d problemgen.Domain) func() tea.Cmd {
	return func() tea.Cmd {
		if _, err := h.app.StartPractice(d); err != nil {
			h.errMsg = err.Error()
		}
		return nil
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	if h.history != nil {
		return h.history.Title()
	}
	return app.ViewFor(app.ModeSelection).Title
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.history != nil {
		return h.history.KeyHints()
	}
	return app.ViewFor(app.ModeSelection).Hints
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(history.CloseMsg); ok {
		h.history = nil
		return h, nil
	}
	if h.history != nil {
		_, cmd := h.history.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.history != nil {
		return h.history.View(width, height)
	}

	cw := components.ContentWidth(width)
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Highlight).
		Bold(true).
		Render(title))

	sections = append(sections, renderStatsBar(h.app, cw))

	var buttons []string
	for i, label := range h.menu.Labels() {
		buttons = append(buttons, components.ModeButton(
			fmt.Sprintf("%s  %s", h.menu.Items[i].Shortcut, label), i == h.menu.Selected, 30))
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n")))

	if recent := h.app.History().Records(); len(recent) > 0 {
		if len(recent) > recentSessions {
			recent = recent[:recentSessions]
		}
		lines := []string{theme.Subtitle.Render("Recent sessions")}
		for _, r := range recent {
			lines = append(lines, theme.Hint.Render(history.Line(r)))
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(strings.Join(lines, "\n")))
	}

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(h.errMsg))
	}

	return components.HomeFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderStatsBar renders notebook and history counters in a bordered box.
func renderStatsBar(a *app.Context, cw int) string {
	snap := a.Notebook().Snapshot()
	reviewStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	review := dimStyle.Render("✎ NOTHING TO REVIEW")
	if snap.Unmastered > 0 {
		review = reviewStyle.Render(fmt.Sprintf("✎ %d TO REVIEW", snap.Unmastered))
	}
	stats := fmt.Sprintf("%s  %s  %s",
		review,
		masteredStyle.Render(fmt.Sprintf("★ %d MASTERED", snap.Mastered)),
		dimStyle.Render(fmt.Sprintf("◷ %d SESSIONS", a.History().Len())),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
