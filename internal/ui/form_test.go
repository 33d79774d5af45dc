package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testFields = []Field{
	{Name: "a", Label: "Entrez la valeur de a : "},
	{Name: "b", Label: "Entrez la valeur de b : "},
	{Name: "c", Label: "Entrez la valeur de c : "},
}

func typeText(m *formModel, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormCollectsValues(t *testing.T) {
	m := newFormModel(testFields)
	typeText(m, "1")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "-3")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(m, "2")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.done || m.cancelled {
		t.Fatalf("done=%v cancelled=%v, want done", m.done, m.cancelled)
	}
	if cmd == nil {
		t.Fatal("last enter should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("last enter should return tea.Quit")
	}
	got := m.Values()
	want := map[string]string{"a": "1", "b": "-3", "c": "2"}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("Values()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestFormNavigationWraps(t *testing.T) {
	m := newFormModel(testFields)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 2 {
		t.Fatalf("focus = %d, want 2", m.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Fatalf("focus = %d, want 0", m.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	typeText(m, "7")
	if m.Values()["b"] != "7" {
		t.Fatalf("b = %q, want 7", m.Values()["b"])
	}
}

func TestFormCancel(t *testing.T) {
	m := newFormModel(testFields)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.cancelled {
		t.Fatal("esc should cancel")
	}
}

func TestFormView(t *testing.T) {
	m := newFormModel(testFields)
	view := m.View()
	if strings.Count(view, "Entrez la valeur de") != 3 {
		t.Fatalf("view should list three labels:\n%s", view)
	}
	if !strings.Contains(view, "esc: cancel") {
		t.Fatalf("view should show the key hint:\n%s", view)
	}
	if !strings.Contains(view, "> ") {
		t.Fatalf("focused field should be marked:\n%s", view)
	}
}
