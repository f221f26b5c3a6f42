package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	st := s.app.Session()
	if st == nil || st.CurrentQuestion() == nil {
		return renderLoading(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderQuestionView(st, width)
}

// renderQuestionView renders the info line, the question and either the
// answer input or the feedback for the last answer.
func (s *SessionScreen) renderQuestionView(st *sess.SessionState, width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + st.Domain.DisplayName())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  %s %d  %s %s",
			st.Index+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			st.TotalWrong,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			formatClock(st.Remaining),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	clock := components.NewProgressBar("", remainingFraction(st, s.app.SessionDuration()), false, width-4)
	clock.LowWater = 0.2
	b.WriteString("  " + clock.View())
	b.WriteString("\n\n")

	q := st.CurrentQuestion()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Equation.Render(q.Expression())))
	b.WriteString("\n\n")

	if st.Phase == sess.PhaseFeedback && st.LastResult != nil {
		b.WriteString(renderFeedback(st.LastResult, width))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}
	return b.String()
}

// renderFeedback renders the verdict on the last answer.
func renderFeedback(r *sess.Result, width int) string {
	var b strings.Builder
	if r.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("✗ Not quite. The answer is %d.", r.Question.Answer())))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Saved to your mistake notebook."))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your results will be saved to history."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the state before questions exist.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func remainingFraction(st *sess.SessionState, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(st.Remaining) / float64(total)
}
