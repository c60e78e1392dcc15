package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// FilterBar renders the filter fields and collects edits. It never
// mutates the fields itself; the workspace applies every change through
// the report controller, which owns the values.
type FilterBar struct {
	theme   themes.Theme
	input   textinput.Model
	focus   int
	option  int
	editing bool
}

// NewFilterBar creates an empty filter bar.
func NewFilterBar(theme themes.Theme) FilterBar {
	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 24
	return FilterBar{theme: theme, input: ti}
}

// Focus returns the focused field index.
func (f *FilterBar) Focus() int { return f.focus }

// Next moves focus to the next field.
func (f *FilterBar) Next(count int) {
	if count == 0 {
		return
	}
	f.focus = (f.focus + 1) % count
	f.option = 0
}

// Prev moves focus to the previous field.
func (f *FilterBar) Prev(count int) {
	if count == 0 {
		return
	}
	f.focus = (f.focus - 1 + count) % count
	f.option = 0
}

// Editing reports whether an inline text edit is open.
func (f *FilterBar) Editing() bool { return f.editing }

// StartEdit opens an inline edit seeded with the field's current value.
func (f *FilterBar) StartEdit(field report.Field) {
	f.input.SetValue(field.Value)
	f.input.Placeholder = field.Placeholder
	f.input.CursorEnd()
	f.input.Focus()
	f.editing = true
}

// UpdateEdit forwards a key to the open inline edit.
func (f *FilterBar) UpdateEdit(msg tea.KeyMsg) {
	f.input, _ = f.input.Update(msg)
}

// CommitEdit closes the inline edit and returns the entered value.
func (f *FilterBar) CommitEdit() string {
	f.editing = false
	f.input.Blur()
	return f.input.Value()
}

// CancelEdit closes the inline edit without a value.
func (f *FilterBar) CancelEdit() {
	f.editing = false
	f.input.Blur()
}

// MoveOption shifts the highlighted option of a select field.
func (f *FilterBar) MoveOption(field report.Field, dir int) {
	if len(field.Options) == 0 {
		return
	}
	f.option = (f.option + dir + len(field.Options)) % len(field.Options)
}

// OptionValue returns the highlighted option value of a select field.
func (f *FilterBar) OptionValue(field report.Field) string {
	if len(field.Options) == 0 {
		return ""
	}
	if f.option >= len(field.Options) {
		f.option = 0
	}
	return field.Options[f.option].Value
}

// View renders the filter fields, highlighting the focused one. The
// active flag dims the bar when focus is elsewhere in the workspace.
func (f *FilterBar) View(fields []report.Field, active bool, width int) string {
	chips := make([]string, 0, len(fields))

	for i, field := range fields {
		label := f.theme.FieldLabel.Render(field.Label + ":")

		var value string
		switch {
		case active && i == f.focus && f.editing:
			value = f.input.View()
		case active && i == f.focus && field.Kind == report.FieldMultiSelect:
			value = f.optionsView(field)
		case active && i == f.focus:
			value = f.theme.FieldFocused.Render(field.Display())
		default:
			value = f.theme.FieldValue.Render(field.Display())
		}

		chip := label + " " + value
		if active && i == f.focus {
			chip = f.theme.FieldFocused.Render("▸ ") + chip
		} else {
			chip = "  " + chip
		}
		chips = append(chips, chip)
	}

	bar := strings.Join(chips, f.theme.Faint.Render("  │  "))
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}

// optionsView renders a multi-select's options with their checked state.
func (f *FilterBar) optionsView(field report.Field) string {
	parts := make([]string, 0, len(field.Options))
	for i, o := range field.Options {
		mark := "☐"
		if field.Selected(o.Value) {
			mark = "☑"
		}
		part := mark + " " + o.Label
		if i == f.option {
			parts = append(parts, f.theme.FieldFocused.Render(part))
		} else {
			parts = append(parts, f.theme.FieldValue.Render(part))
		}
	}
	return strings.Join(parts, " ")
}
