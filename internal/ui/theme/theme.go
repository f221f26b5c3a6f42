package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Each colour has one job across screens.
var (
	Primary   = lipgloss.Color("#8B5CF6") // focus, brand, equation border
	Secondary = lipgloss.Color("#14B8A6") // progress fill
	Accent    = lipgloss.Color("#F97316") // header counters, learning streaks
	Success   = lipgloss.Color("#22C55E") // correct answers, mastered records
	Error     = lipgloss.Color("#F43F5E") // wrong answers, low timer
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8") // hints, empty states
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B") // header and footer bars
	Border    = lipgloss.Color("#334155")
	Highlight = lipgloss.Color("#FACC15") // mastered count, checked rows
	Info      = lipgloss.Color("#22D3EE") // notebook review count
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Mastered = lipgloss.NewStyle().
			Foreground(Success)

	Learning = lipgloss.NewStyle().
			Foreground(Accent)

	Checked = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)
)

// Equation renders an arithmetic question.
var Equation = lipgloss.NewStyle().
	Foreground(Text).
	Bold(true).
	Padding(1, 4).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Primary)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
