// Package layout draws the chrome around every screen: a header bar with the
// app name and notebook counters, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// The smallest terminal the equation box and the mistake list fit into.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "  Mathdrill"

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats are the counters shown on the right of the header.
type HeaderStats struct {
	ToReview int // unmastered notebook records
	Sessions int // history entries
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Window too small: %d x %d\n\nResize to at least %d x %d.",
			width, height, MinWidth, MinHeight))
}

// RenderHeader puts the brand on the left, title in the middle and the
// counters on the right. Gaps shrink to one space before anything is cut.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := theme.Body.Render(title)

	counter := lipgloss.NewStyle().Foreground(theme.Accent)
	right := counter.Render(fmt.Sprintf("✎ %d to review", stats.ToReview)) +
		"   " +
		counter.Render(fmt.Sprintf("◷ %d sessions", stats.Sessions))

	inner := max(0, width-4)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max(1, (inner-cw)/2-lw)
	rightGap := max(1, inner-lw-leftGap-cw-rw)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return strings.Join([]string{header, body, footer}, "\n")
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
