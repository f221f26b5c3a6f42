// Package mistakes is the mistake notebook screen: a selectable list of
// recorded mistakes and the remedial practice run over them.
package mistakes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/export"
	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// DefaultFeedbackDelay is how long a remedial verdict stays on screen.
const DefaultFeedbackDelay = 1500 * time.Millisecond

// feedbackDoneMsg dismisses the verdict shown for answer number seq.
type feedbackDoneMsg struct {
	seq uint64
}

// MistakesScreen shows the notebook and, while one runs, the remedial
// session.
type MistakesScreen struct {
	app       *app.Context
	exportDir string
	delay     time.Duration

	// List mode.
	cursor   int
	selected map[int]bool

	// Remedial mode.
	input    components.TextInput
	feedback *practice.Item
	revealed bool
	done     bool
	seq      uint64

	notice string
	failed bool
}

var _ screen.Screen = (*MistakesScreen)(nil)
var _ screen.KeyHintProvider = (*MistakesScreen)(nil)

// New creates a MistakesScreen. Exports and worksheets go to exportDir;
// delay <= 0 uses DefaultFeedbackDelay.
func New(a *app.Context, exportDir string, delay time.Duration) *MistakesScreen {
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	return &MistakesScreen{
		app:       a,
		exportDir: exportDir,
		delay:     delay,
		selected:  map[int]bool{},
		input:     components.NewTextInput("0-100", true, 3),
	}
}

func (s *MistakesScreen) Init() tea.Cmd {
	return nil
}

func (s *MistakesScreen) Title() string {
	if rs := s.app.Remedial(); rs != nil {
		return fmt.Sprintf("%s · %s practice", app.ViewFor(app.WrongPractice).Title, rs.Mode)
	}
	return app.ViewFor(app.WrongPractice).Title
}

func (s *MistakesScreen) KeyHints() []layout.KeyHint {
	if s.app.Remedial() == nil {
		return append(app.ViewFor(app.WrongPractice).Hints,
			layout.KeyHint{Key: "e", Description: "Export"},
			layout.KeyHint{Key: "w", Description: "Worksheet"},
		)
	}
	if s.done || s.feedback != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Skip"},
		{Key: "?", Description: "Answer"},
		{Key: "m", Description: "Mastered"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *MistakesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if msg.seq == s.seq && s.feedback != nil {
			s.advance()
		}
		return s, nil
	case tea.KeyMsg:
		if s.app.Remedial() != nil {
			return s.handleRemedialKey(msg)
		}
		return s.handleListKey(msg)
	}

	if s.app.Remedial() != nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *MistakesScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	n := s.app.Notebook().Len()
	switch key := msg.String(); key {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < n-1 {
			s.cursor++
		}
	case "space":
		if n > 0 {
			s.selected[s.cursor] = !s.selected[s.cursor]
		}
	case "a":
		s.toggleAll(n)
	case "d":
		s.deleteRows()
	case "m":
		s.markCursorMastered()
	case "1", "2", "3":
		if err := s.app.SetLevel(int(key[0] - '0')); err != nil {
			s.setError(err)
		} else {
			s.setNotice(fmt.Sprintf("Level %s", key))
		}
	case "o":
		return s, s.startRemedial(practice.ModeOriginal)
	case "s":
		return s, s.startRemedial(practice.ModeSimilar)
	case "x":
		return s, s.startRemedial(practice.ModeMixed)
	case "e":
		s.exportNotebook()
	case "w":
		s.writeWorksheet()
	case "esc":
		s.app.BackToMenu()
	}
	return s, nil
}

func (s *MistakesScreen) toggleAll(n int) {
	all := len(s.checked()) == n
	s.selected = map[int]bool{}
	if all {
		return
	}
	for i := range n {
		s.selected[i] = true
	}
}

// checked returns the selected row indices in ascending order.
func (s *MistakesScreen) checked() []int {
	var idx []int
	for i, ok := range s.selected {
		if ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}

func (s *MistakesScreen) deleteRows() {
	idx := s.checked()
	if len(idx) == 0 {
		if s.app.Notebook().Len() == 0 {
			return
		}
		idx = []int{s.cursor}
	}
	n, err := s.app.DeleteMistakes(context.Background(), idx)
	s.selected = map[int]bool{}
	if last := s.app.Notebook().Len() - 1; s.cursor > last {
		s.cursor = max(last, 0)
	}
	if err != nil {
		s.setError(err)
		return
	}
	s.setNotice(fmt.Sprintf("Deleted %d", n))
}

func (s *MistakesScreen) markCursorMastered() {
	recs := s.app.Notebook().Records()
	if s.cursor >= len(recs) {
		return
	}
	rec := recs[s.cursor]
	if _, err := s.app.MarkMastered(context.Background(), rec.Expression, ""); err != nil {
		s.setError(err)
		return
	}
	s.setNotice(rec.Expression + " mastered")
}

func (s *MistakesScreen) startRemedial(mode practice.Mode) tea.Cmd {
	_, err := s.app.StartRemedial(mode)
	switch {
	case errors.Is(err, practice.ErrAllMastered):
		s.setNotice("Every mistake is mastered. Try original practice at level 3.")
		return nil
	case errors.Is(err, practice.ErrNoEligible):
		s.setNotice("Nothing to practice yet.")
		return nil
	case err != nil:
		s.setError(err)
		return nil
	}
	s.notice = ""
	s.feedback = nil
	s.revealed = false
	s.done = false
	s.input.Reset()
	return s.input.Init()
}

func (s *MistakesScreen) exportNotebook() {
	now := s.app.Now()
	doc := export.NewNotebook(s.app.Notebook().Snapshot(), now)
	path, err := export.WriteFile(s.exportDir, export.NotebookFileName(now), doc)
	if err != nil {
		s.setError(err)
		return
	}
	s.setNotice("Saved " + path)
}

func (s *MistakesScreen) writeWorksheet() {
	now := s.app.Now()
	items := export.WorksheetItems(s.app.Notebook().Records(), s.app.Deriver(), s.app.Level(), true)
	path, err := export.WriteWorksheetFile(s.exportDir, export.DefaultWorksheetConfig(), items, now)
	if err != nil {
		s.setError(err)
		return
	}
	s.setNotice("Saved " + path)
}

func (s *MistakesScreen) setNotice(msg string) {
	s.notice, s.failed = msg, false
}

func (s *MistakesScreen) setError(err error) {
	s.notice, s.failed = err.Error(), true
}
