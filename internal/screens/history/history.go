package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/mathdrill/internal/history"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// CloseMsg asks the owner of the history view to close it.
type CloseMsg struct{}

// HistoryScreen lists past timed sessions, newest first.
type HistoryScreen struct {
	records  []hist.Record
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen over a copy of h's records.
func New(h *hist.History) *HistoryScreen {
	return &HistoryScreen{
		records:  h.Records(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return CloseMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.records)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := prefix + Line(r)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s · %d correct · %d wrong",
				r.Mode.DisplayName(), r.Correct, r.Wrong)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				accuracyStyle(r.Accuracy).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Line formats one history record on a single line.
func Line(r hist.Record) string {
	return fmt.Sprintf("%s  %d:%02d  %d questions  %d%% accuracy",
		r.Date.Local().Format("Jan 02, 2006 15:04"),
		r.Duration/60, r.Duration%60, r.Total, r.Accuracy)
}

func accuracyStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return theme.Correct
	case pct >= 50:
		return theme.Learning
	}
	return theme.Incorrect
}
