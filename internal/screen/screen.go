// Package screen defines the contract between the root TUI model and the
// individual views it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Screen is one view of the terminal UI. The root model owns the active
// screen and replaces it when app.State changes; a screen never swaps
// itself out.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body only. The root model adds header and footer and
	// passes the height that remains.
	View(width, height int) string

	// Title is shown in the middle of the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the footer hints that
// app.ViewFor gives its state.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
