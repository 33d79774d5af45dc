// Package ui holds the optional terminal form that collects coefficients.
package ui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ErrCancelled is returned when the user leaves the form with esc or ctrl+c.
var ErrCancelled = errors.New("form cancelled")

// Field is one line of the form.
type Field struct {
	Name  string
	Label string
}

type formModel struct {
	fields    []Field
	inputs    []textinput.Model
	focus     int
	width     int // label column width in cells
	done      bool
	cancelled bool
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	formHintText = "enter: next  tab/shift+tab: move  esc: cancel"
)

// newFormModel builds one text input per field. Answers are kept as typed;
// parsing happens after the form closes.
func newFormModel(fields []Field) *formModel {
	m := &formModel{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 64
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
		if w := runewidth.StringWidth(strings.TrimSpace(f.Label)); w > m.width {
			m.width = w
		}
	}
	return m
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.focus == len(m.inputs)-1 {
				m.done = true
				m.inputs[m.focus].Blur()
				return m, tea.Quit
			}
			return m, m.move(1)
		case tea.KeyTab, tea.KeyDown:
			return m, m.move(1)
		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.move(-1)
		}
	}
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// move shifts focus by delta, wrapping around.
func (m *formModel) move(delta int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + n) % n
	return m.inputs[m.focus].Focus()
}

func (m *formModel) View() string {
	var b strings.Builder
	for i, f := range m.fields {
		label := runewidth.FillRight(strings.TrimSpace(f.Label), m.width)
		style := labelStyle
		marker := "  "
		if i == m.focus && !m.done {
			style = focusStyle
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(style.Render(label))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(doneStyle.Render("ok"))
	} else {
		b.WriteString(hintStyle.Render(formHintText))
	}
	b.WriteString("\n")
	return b.String()
}

// Values returns the raw answers keyed by field name.
func (m *formModel) Values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		out[f.Name] = m.inputs[i].Value()
	}
	return out
}

// RunForm shows the form on out, reading keys from in, and returns the
// raw answers keyed by field name.
func RunForm(ctx context.Context, fields []Field, in io.Reader, out io.Writer) (map[string]string, error) {
	model := newFormModel(fields)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := final.(*formModel)
	if !ok || fm.cancelled {
		return nil, ErrCancelled
	}
	return fm.Values(), nil
}
