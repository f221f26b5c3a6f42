package app

import "github.com/abhisek/mathdrill/internal/ui/layout"

// State is the screen the application is on.
type State int

const (
	ModeSelection State = iota
	Practice
	Result
	WrongPractice
)

func (s State) String() string {
	switch s {
	case ModeSelection:
		return "mode-selection"
	case Practice:
		return "practice"
	case Result:
		return "result"
	case WrongPractice:
		return "wrong-practice"
	}
	return "unknown"
}

// View describes what the front end shows for a state.
type View struct {
	Title string
	Hints []layout.KeyHint
}

// ViewFor maps a state to its view. It has no side effects.
func ViewFor(s State) View {
	switch s {
	case ModeSelection:
		return View{
			Title: "Choose a Mode",
			Hints: []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			},
		}
	case Practice:
		return View{
			Title: "Practice",
			Hints: []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Tab", Description: "Skip"},
				{Key: "Esc", Description: "End"},
			},
		}
	case Result:
		return View{
			Title: "Results",
			Hints: []layout.KeyHint{
				{Key: "e", Description: "Export"},
				{Key: "Enter", Description: "Again"},
				{Key: "Esc", Description: "Menu"},
			},
		}
	case WrongPractice:
		return View{
			Title: "Mistake Notebook",
			Hints: []layout.KeyHint{
				{Key: "Space", Description: "Select"},
				{Key: "d", Description: "Delete"},
				{Key: "m", Description: "Mastered"},
				{Key: "1-3", Description: "Level"},
				{Key: "o/s/x", Description: "Practice"},
				{Key: "Esc", Description: "Back"},
			},
		}
	}
	return View{}
}
