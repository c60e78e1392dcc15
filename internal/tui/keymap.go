package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the workspace keyboard shortcuts. Row-action keys come
// from the report schema and are matched separately.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	ColLeft  key.Binding
	ColRight key.Binding

	// Filters
	Filter key.Binding
	Apply  key.Binding
	Reset  key.Binding

	// Data
	Refresh     key.Binding
	ExportExcel key.Binding
	ExportPDF   key.Binding
	SaveExcel   key.Binding
	SavePDF     key.Binding

	// Application
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next page"),
		),
		ColLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "scroll columns left"),
		),
		ColRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "scroll columns right"),
		),

		// Filters
		Filter: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f/Tab", "edit filters"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "apply filters"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", "reset filters"),
		),

		// Data
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "refresh"),
		),
		ExportExcel: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export Excel"),
		),
		ExportPDF: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export PDF"),
		),
		SaveExcel: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "save page as .xlsx"),
		),
		SavePDF: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "save page as .pdf"),
		),

		// Application
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
