// Package summary is the result screen shown after a timed session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/export"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// shownResults caps the answered-question list.
const shownResults = 8

// SummaryScreen displays the session results.
type SummaryScreen struct {
	app       *app.Context
	summary   *session.SessionSummary
	exportDir string
	buttons   []components.Button
	focused   int
	notice    string
	failed    bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a's last session. Exports are written
// to exportDir.
func New(a *app.Context, exportDir string) *SummaryScreen {
	s := &SummaryScreen{app: a, summary: a.Summary(), exportDir: exportDir}
	s.buttons = []components.Button{
		components.NewButton("Practice again", false, s.again),
		components.NewButton("Export results", false, s.export),
		components.NewButton("Notebook", false, func() tea.Cmd { s.app.OpenNotebook(); return nil }),
		components.NewButton("Menu", false, func() tea.Cmd { s.app.BackToMenu(); return nil }),
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return app.ViewFor(app.Result).Title
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return append([]layout.KeyHint{{Key: "←→", Description: "Choose"}}, app.ViewFor(app.Result).Hints...)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.focused = (s.focused + len(s.buttons) - 1) % len(s.buttons)
	case "right", "l", "tab":
		s.focused = (s.focused + 1) % len(s.buttons)
	case "e":
		return s, s.export()
	case "n":
		s.app.OpenNotebook()
	case "esc":
		s.app.BackToMenu()
	case "enter":
		b := s.buttons[s.focused]
		b.Active = true
		var cmd tea.Cmd
		_, cmd = b.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SummaryScreen) again() tea.Cmd {
	domain := s.app.Session().Domain
	if _, err := s.app.StartPractice(domain); err != nil {
		s.notice, s.failed = err.Error(), true
	}
	return nil
}

func (s *SummaryScreen) export() tea.Cmd {
	now := s.app.Now()
	doc := export.NewResults(s.app.Session().Domain, s.summary, s.app.Notebook().Records(), now)
	path, err := export.WriteFile(s.exportDir, export.ResultsFileName(now), doc)
	if err != nil {
		s.notice, s.failed = err.Error(), true
		return nil
	}
	s.notice, s.failed = "Saved "+path, false
	return nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Time's up!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %d:%02d", s.app.Session().Domain.DisplayName(), mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"%d answered   %s   %s",
		sum.TotalQuestions,
		theme.Correct.Render(fmt.Sprintf("✓ %d", sum.TotalCorrect)),
		theme.Incorrect.Render(fmt.Sprintf("✗ %d", sum.TotalWrong)),
	)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", float64(sum.Accuracy)/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	results := sum.Results
	if len(results) > shownResults {
		results = results[len(results)-shownResults:]
	}
	for _, r := range results {
		var line string
		if r.Correct {
			line = theme.Correct.Render("✓ ") + fmt.Sprintf("%s  %d", r.Question.Expression(), r.UserAnswer)
		} else {
			line = theme.Incorrect.Render("✗ ") + fmt.Sprintf("%s  %d (answer %d)",
				r.Question.Expression(), r.UserAnswer, r.Question.Answer())
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ButtonRow(s.buttons, s.focused)))

	if s.notice != "" {
		style := theme.Hint
		if s.failed {
			style = theme.Incorrect
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.notice)))
	}
	return b.String()
}
