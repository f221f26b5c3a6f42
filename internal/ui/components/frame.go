package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const (
	minContentWidth = 20
	maxContentWidth = 60
)

// ContentWidth is the inner width shared by the home menu and the mistake
// list, so their boxes line up inside the frame.
func ContentWidth(frameWidth int) int {
	// double border (2) plus horizontal padding (4)
	w := frameWidth - 6
	return max(minContentWidth, min(w, maxContentWidth))
}

// HomeFrame draws the double-bordered box around the mode menu, centred in
// width x height.
func HomeFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ModeButton renders one entry of the mode menu. The focused entry is filled.
func ModeButton(label string, focused bool, width int) string {
	base := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !focused {
		return base.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
	}
	return base.Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		BorderForeground(theme.Highlight).
		Render("▸ " + label)
}

// CheckRow renders one selectable list row. The cursor marks the focused
// row; a tick marks rows picked for a bulk action.
func CheckRow(label string, checked, focused bool, width int) string {
	box := "[ ]"
	if checked {
		box = theme.Checked.Render("[x]")
	}
	cursor := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		cursor = "▸ "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(cursor + box + " " + style.Render(label))
}
