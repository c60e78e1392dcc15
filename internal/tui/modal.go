package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// Modal hosts one action form. While a submission is in flight the modal
// is locked: keys neither close it nor start a second submission.
type Modal struct {
	form       *report.Form
	theme      themes.Theme
	err        string
	inputs     []textinput.Model
	focus      int
	submitting bool
}

// NewModal builds the modal for a materialized action form.
func NewModal(form *report.Form, theme themes.Theme) *Modal {
	inputs := make([]textinput.Model, len(form.Fields))
	for i, field := range form.Fields {
		if field.Kind == report.FormSelect {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.SetValue(field.Value)
		ti.CharLimit = 120
		ti.Width = 32
		inputs[i] = ti
	}

	m := &Modal{form: form, theme: theme, inputs: inputs}
	m.setFocus(0)
	return m
}

// Form returns the hosted form.
func (m *Modal) Form() *report.Form { return m.form }

// Submitting reports whether a submission is in flight.
func (m *Modal) Submitting() bool { return m.submitting }

// Lock marks a submission as in flight.
func (m *Modal) Lock() {
	m.submitting = true
	m.err = ""
}

// Fail unlocks the modal and shows the error inline, keeping the
// entered values.
func (m *Modal) Fail(msg string) {
	m.submitting = false
	m.err = msg
}

// Err returns the inline error message, empty when none.
func (m *Modal) Err() string { return m.err }

// Check runs the form's local validation.
func (m *Modal) Check() error { return m.form.Check() }

func (m *Modal) setFocus(i int) {
	if len(m.form.Fields) == 0 {
		return
	}
	if i < 0 {
		i = len(m.form.Fields) - 1
	}
	if i >= len(m.form.Fields) {
		i = 0
	}

	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if m.form.Fields[i].Kind != report.FormSelect {
		m.inputs[i].Focus()
	}
}

// cycleOption moves a select field to its next or previous option.
func (m *Modal) cycleOption(field *report.FormField, dir int) {
	if len(field.Options) == 0 {
		return
	}
	idx := 0
	for i, o := range field.Options {
		if o.Value == field.Value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(field.Options)) % len(field.Options)
	field.Value = field.Options[idx].Value
}

// HandleKey processes one key while the modal is open. Enter and escape
// are the host's concern; everything else lands here.
func (m *Modal) HandleKey(msg tea.KeyMsg) {
	if m.submitting || len(m.form.Fields) == 0 {
		return
	}

	field := &m.form.Fields[m.focus]

	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return
	case "left":
		if field.Kind == report.FormSelect {
			m.cycleOption(field, -1)
			return
		}
	case "right":
		if field.Kind == report.FormSelect {
			m.cycleOption(field, 1)
			return
		}
	case " ":
		if field.Kind == report.FormSelect {
			m.cycleOption(field, 1)
			return
		}
	}

	if field.Kind == report.FormSelect {
		return
	}

	m.inputs[m.focus], _ = m.inputs[m.focus].Update(msg)
	field.Value = m.inputs[m.focus].Value()
}

// View renders the modal box.
func (m *Modal) View(width int) string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.form.Title))
	b.WriteString("\n\n")

	for i, field := range m.form.Fields {
		label := m.theme.FieldLabel.Render(field.Label)
		if i == m.focus {
			label = m.theme.FieldFocused.Render(field.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		if field.Kind == report.FormSelect {
			parts := make([]string, 0, len(field.Options))
			for _, o := range field.Options {
				if o.Value == field.Value {
					parts = append(parts, m.theme.Selected.Render(" "+o.Label+" "))
				} else {
					parts = append(parts, m.theme.Faint.Render(" "+o.Label+" "))
				}
			}
			b.WriteString(strings.Join(parts, " "))
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(m.theme.StatusPending.Render("Submitting..."))
	case m.err != "":
		b.WriteString(m.theme.StatusError.Render("✗ " + m.err))
	default:
		b.WriteString(m.theme.Faint.Render("enter submit · esc cancel · tab next field"))
	}

	box := m.theme.RoundedBox.Render(b.String())
	if width > 0 {
		return lipgloss.Place(width, lipgloss.Height(box), lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
