package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const minBarCells = 4

// ProgressBar is a one-line meter. Fraction is clamped to [0,1]; the whole
// bar, label and percentage included, fits in Width cells.
type ProgressBar struct {
	Label       string
	Fraction    float64
	ShowPercent bool
	Width       int

	// LowWater turns the fill red once Fraction drops below it. Zero disables.
	LowWater float64
}

func NewProgressBar(label string, fraction float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Fraction: fraction, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	frac := max(0, min(p.Fraction, 1))

	var prefix, suffix string
	if p.Label != "" {
		prefix = theme.Body.Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %3d%%", int(frac*100+0.5)))
	}

	cells := max(minBarCells, p.Width-lipgloss.Width(prefix)-lipgloss.Width(suffix))
	filled := int(frac * float64(cells))

	fill := theme.ProgressFilled
	if p.LowWater > 0 && frac < p.LowWater {
		fill = fill.Background(theme.Error)
	}
	return prefix +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)) +
		suffix
}
