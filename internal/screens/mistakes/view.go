package mistakes

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/notebook"
	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func (s *MistakesScreen) View(width, height int) string {
	var body string
	if rs := s.app.Remedial(); rs != nil {
		body = s.renderRemedial(rs, width)
	} else {
		body = s.renderList(width, height)
	}
	if s.notice != "" {
		style := theme.Hint
		if s.failed {
			style = theme.Incorrect
		}
		body += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(s.notice))
	}
	return body
}

func (s *MistakesScreen) renderList(width, height int) string {
	cw := components.ContentWidth(width)
	snap := s.app.Notebook().Snapshot()
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(
		fmt.Sprintf("%d mistakes · %d mastered · level %d", snap.Total, snap.Mastered, s.app.Level())))
	b.WriteString("\n\n")

	if snap.Total == 0 {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Text).
			Render("No mistakes yet. Wrong answers from practice land here."))
		return b.String()
	}

	// Leave room for the summary line, the notice and the mode legend.
	rows := max(height-8, 3)
	start := 0
	if s.cursor >= rows {
		start = s.cursor - rows + 1
	}
	end := min(start+rows, len(snap.Records))

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, components.CheckRow(recordLabel(snap.Records[i]), s.selected[i], i == s.cursor, cw))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(
		"o original · s similar · x mixed")))
	return b.String()
}

func recordLabel(r notebook.Record) string {
	status := r.Status()
	switch status {
	case "mastered":
		status = theme.Mastered.Render(status)
	case "learning":
		status = theme.Learning.Render(fmt.Sprintf("%s %d/%d", status, r.ConsecutiveCorrect, notebook.MasteryStreak))
	default:
		status = theme.Hint.Render(status)
	}
	return fmt.Sprintf("%-14s you said %-3d  %s", r.Expression, r.UserAnswer, status)
}

func (s *MistakesScreen) renderRemedial(rs *practice.Session, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	done, total := rs.Progress()
	var b strings.Builder

	if s.done {
		b.WriteString(center.Foreground(theme.Highlight).Bold(true).Render("Practice complete!"))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Text).Render(
			fmt.Sprintf("%d of %d correct", rs.CorrectCount(), total)))
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to return to the notebook."))
		return b.String()
	}

	bar := components.NewProgressBar(fmt.Sprintf("%d/%d", done, total), float64(done)/float64(max(total, 1)), false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	it := rs.Current()
	if it == nil {
		return b.String()
	}

	badge := theme.Learning.Render("[original]")
	if it.Type == practice.TypeSimilar {
		badge = theme.Mastered.Render("[similar]") + theme.Hint.Render("  from "+it.OriginalExpression)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Equation.Render(it.Expression)))
	b.WriteString("\n\n")

	if s.feedback != nil {
		if s.feedback.Correct {
			b.WriteString(center.Foreground(theme.Success).Bold(true).Render("✓ Correct!"))
		} else {
			b.WriteString(center.Foreground(theme.Error).Bold(true).Render(
				fmt.Sprintf("✗ Not quite. The answer is %d.", s.feedback.CorrectAnswer)))
		}
		return b.String()
	}

	b.WriteString(center.Render("Answer: " + s.input.View()))
	if s.revealed {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Accent).Render(fmt.Sprintf("The answer is %d", it.CorrectAnswer)))
	}
	return b.String()
}
