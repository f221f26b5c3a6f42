package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_Shortcut(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "One", Shortcut: "1", Action: func() tea.Cmd { picked = "one"; return nil }},
		{Label: "Two", Shortcut: "2", Action: func() tea.Cmd { picked = "two"; return nil }},
	})

	m, _ = m.Update(keyPress('2'))
	if picked != "two" {
		t.Errorf("picked = %q, want two", picked)
	}
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true, Action: func() tea.Cmd { called = true; return nil }},
		{Label: "On"},
		{Label: "Also on"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up moved onto a disabled item")
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}

	if m.activate(0) != nil || called {
		t.Error("disabled item should not run")
	}
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Practice", Shortcut: "p"}})
	if !strings.Contains(m.View(), "[p] Practice") {
		t.Errorf("view = %q", m.View())
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("0-100", true, 3)
	for _, r := range "4x2 " {
		ti, _ = ti.Update(keyPress(r))
	}
	ti, _ = ti.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	if ti.Value() != "42" {
		t.Errorf("value = %q, want 42", ti.Value())
	}

	ti.Submit(true)
	if !strings.Contains(ti.View(), "✓") {
		t.Error("submitted input should show a tick")
	}
	ti.Reset()
	if ti.Value() != "" || strings.Contains(ti.View(), "✓") {
		t.Error("reset should clear value and mark")
	}
}

func TestTextInput_CharLimit(t *testing.T) {
	ti := NewTextInput("", true, 3)
	for _, r := range "12345" {
		ti, _ = ti.Update(keyPress(r))
	}
	if ti.Value() != "123" {
		t.Errorf("value = %q, want 123", ti.Value())
	}
}

func TestButtonRow(t *testing.T) {
	pressed := false
	buttons := []Button{
		NewButton("Again", false, nil),
		NewButton("Menu", false, func() tea.Cmd { pressed = true; return nil }),
	}
	row := ButtonRow(buttons, 1)
	if !strings.Contains(row, "▸ Menu") || strings.Contains(row, "▸ Again") {
		t.Errorf("row = %q", row)
	}

	b := buttons[1]
	b.Active = true
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("enter on the active button should press it")
	}
}

func TestCheckRow(t *testing.T) {
	if got := CheckRow("1 + 1 = ?", true, true, 40); !strings.Contains(got, "[x]") || !strings.Contains(got, "▸") {
		t.Errorf("checked focused row = %q", got)
	}
	if got := CheckRow("1 + 1 = ?", false, false, 40); !strings.Contains(got, "[ ]") || strings.Contains(got, "▸") {
		t.Errorf("plain row = %q", got)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.5, 1.5} {
		if w := lipgloss.Width(NewProgressBar("", pct, false, 20).View()); w != 20 {
			t.Errorf("width at %v = %d, want 20", pct, w)
		}
	}
}

func TestProgressBar_LabelAndPercentFit(t *testing.T) {
	bar := NewProgressBar("Accuracy", 0.75, true, 40)
	got := bar.View()
	if w := lipgloss.Width(got); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(got, "Accuracy") || !strings.Contains(got, "75%") {
		t.Errorf("view = %q", got)
	}
}
