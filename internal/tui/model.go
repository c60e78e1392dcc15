// Package tui hosts the report workspace: one filterable, paginated
// data table per report, with modal action workflows and transient
// alerts. Every report route runs the same workspace over its own
// schema.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/components"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// State represents the current input focus of the workspace.
type State int

const (
	StateBrowse State = iota
	StateFilter
	StateModal
	StateHelp
)

// Model holds the workspace state.
type Model struct {
	ctrl      *report.Controller
	notifier  *Notifier
	modal     *Modal
	theme     themes.Theme
	downloads string
	table     components.DataTable
	filter    components.FilterBar
	pager     components.Pagination
	spinner   spinner.Model
	keymap    KeyMap
	width     int
	height    int
	state     State
	quitting  bool
}

// newModel creates a workspace for the configured report.
func newModel(cfg Config) Model {
	width := cfg.Width
	if width == 0 {
		width = 100
	}
	height := cfg.Height
	if height == 0 {
		height = 30
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctrl:      report.NewController(cfg.Schema),
		notifier:  NewNotifier(cfg.AlertTTL),
		theme:     cfg.Theme,
		downloads: cfg.Downloads,
		table:     components.NewDataTable(cfg.Schema.Columns, cfg.Schema.EmptyText, cfg.Theme),
		filter:    components.NewFilterBar(cfg.Theme),
		pager:     components.NewPagination(cfg.Theme),
		spinner:   sp,
		keymap:    DefaultKeyMap(),
		width:     width,
		height:    height,
		state:     StateBrowse,
	}
	m.table.SetSize(width, tableHeight(height))
	m.table.SetLoading(true)
	return m
}

func tableHeight(total int) int {
	h := total - 10
	if h < 4 {
		h = 4
	}
	return h
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	gen, params, err := m.ctrl.Submit()
	if err != nil {
		return tea.Batch(tea.EnterAltScreen, m.notifier.Show(AlertWarning, common.UserMessage(err)))
	}
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick, fetchPage(m.ctrl.Schema().Fetch, gen, params))
}

// submit starts a page-1 fetch with the current filters.
func (m Model) submit() (Model, tea.Cmd) {
	gen, params, err := m.ctrl.Submit()
	if err != nil {
		return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
	}
	m.table.SetLoading(true)
	return m, tea.Batch(m.spinner.Tick, fetchPage(m.ctrl.Schema().Fetch, gen, params))
}

func (m Model) changePage(n int) (Model, tea.Cmd) {
	gen, params, err := m.ctrl.ChangePage(n)
	if err != nil {
		return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
	}
	m.table.SetLoading(true)
	return m, tea.Batch(m.spinner.Tick, fetchPage(m.ctrl.Schema().Fetch, gen, params))
}

func (m Model) refresh() (Model, tea.Cmd) {
	gen, params, err := m.ctrl.Refresh()
	if err != nil {
		return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
	}
	m.table.SetLoading(true)
	return m, tea.Batch(m.spinner.Tick, fetchPage(m.ctrl.Schema().Fetch, gen, params))
}

func (m Model) reset() (Model, tea.Cmd) {
	gen, params, err := m.ctrl.Reset()
	if err != nil {
		return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
	}
	m.table.SetLoading(true)
	return m, tea.Batch(m.spinner.Tick, fetchPage(m.ctrl.Schema().Fetch, gen, params))
}

// Update handles messages and updates the workspace.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetSize(msg.Width, tableHeight(msg.Height))
		return m, nil

	case pageMsg:
		return m.handlePage(msg)

	case modalDoneMsg:
		return m.handleModalDone(msg)

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.notifier.Show(AlertError, common.UserMessage(msg.err))
		}
		return m, m.notifier.Show(AlertSuccess, "Saved "+msg.path)

	case alertExpiredMsg:
		m.notifier.Expire(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handlePage(msg pageMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Apply(msg.gen, msg.data, msg.err) {
		// A newer fetch superseded this one.
		return m, nil
	}

	m.table.SetLoading(false)
	if msg.err != nil {
		m.table.SetRows(nil)
		m.pager.Set(1, 0)
		return m, m.notifier.Show(AlertError, m.ctrl.Err())
	}

	m.table.SetRows(msg.data.Cells)
	m.pager.Set(m.ctrl.Page(), m.ctrl.TotalPages())
	return m, nil
}

func (m Model) handleModalDone(msg modalDoneMsg) (tea.Model, tea.Cmd) {
	if m.modal == nil {
		return m, nil
	}

	if msg.err != nil {
		m.modal.Fail(common.UserMessage(msg.err))
		return m, nil
	}

	m.modal = nil
	m.state = StateBrowse

	message := msg.message
	if message == "" {
		message = "Done"
	}

	m2, cmd := m.refresh()
	return m2, tea.Batch(m2.notifier.Show(AlertSuccess, message), cmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, even mid-submission.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateModal:
		return m.handleModalKey(msg)
	case StateFilter:
		return m.handleFilterKey(msg)
	case StateHelp:
		m.state = StateBrowse
		return m, nil
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down):
		m.table.Update(msg)
		return m, nil

	case key.Matches(msg, m.keymap.PrevPage):
		if !m.pager.HasPrev() {
			return m, nil
		}
		m2, cmd := m.changePage(m.ctrl.Page() - 1)
		return m2, cmd

	case key.Matches(msg, m.keymap.NextPage):
		if !m.pager.HasNext() {
			return m, nil
		}
		m2, cmd := m.changePage(m.ctrl.Page() + 1)
		return m2, cmd

	case key.Matches(msg, m.keymap.ColLeft):
		m.table.ScrollLeft()
		return m, nil

	case key.Matches(msg, m.keymap.ColRight):
		m.table.ScrollRight()
		return m, nil

	case key.Matches(msg, m.keymap.Filter):
		m.state = StateFilter
		return m, nil

	case key.Matches(msg, m.keymap.Refresh):
		m2, cmd := m.refresh()
		return m2, cmd

	case key.Matches(msg, m.keymap.Reset):
		m2, cmd := m.reset()
		return m2, cmd

	case key.Matches(msg, m.keymap.ExportExcel):
		return m.export(report.ExportExcel)

	case key.Matches(msg, m.keymap.ExportPDF):
		return m.export(report.ExportPDF)

	case key.Matches(msg, m.keymap.SaveExcel):
		return m.saveLocal(report.ExportExcel)

	case key.Matches(msg, m.keymap.SavePDF):
		return m.saveLocal(report.ExportPDF)
	}

	return m.handleActionKey(msg)
}

// export starts a server-side export. A missing date bound fails fast
// with a warning before anything goes on the wire.
func (m Model) export(kind report.ExportKind) (tea.Model, tea.Cmd) {
	schema := m.ctrl.Schema()
	if schema.Export == nil {
		return m, nil
	}

	params, err := m.ctrl.ExportParams(kind)
	if err != nil {
		return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
	}

	return m, tea.Batch(
		m.notifier.Show(AlertInfo, "Export started..."),
		runExport(schema.Export, params),
	)
}

// saveLocal writes the page on screen to a local file.
func (m Model) saveLocal(kind report.ExportKind) (tea.Model, tea.Cmd) {
	if m.ctrl.State() != report.StateLoaded || len(m.ctrl.Data().Cells) == 0 {
		return m, m.notifier.Show(AlertWarning, "Nothing to save yet")
	}
	return m, saveLocal(m.ctrl.Schema(), m.ctrl.Data(), kind, m.downloads)
}

// handleActionKey matches a key against the schema's row actions and
// opens the modal for the selected row.
func (m Model) handleActionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()
	for _, action := range m.ctrl.Schema().Actions {
		if action.Key != pressed {
			continue
		}

		form, err := action.Build(m.table.Cursor())
		if err != nil {
			return m, m.notifier.Show(AlertWarning, common.UserMessage(err))
		}

		m.modal = NewModal(form, m.theme)
		m.state = StateModal
		return m, nil
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The in-flight lock: no closing, no second submit.
	if m.modal.Submitting() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.modal = nil
		m.state = StateBrowse
		return m, nil

	case key.Matches(msg, m.keymap.Select):
		if err := m.modal.Check(); err != nil {
			m.modal.Fail(common.UserMessage(err))
			return m, nil
		}
		m.modal.Lock()
		return m, submitForm(m.modal.Form())
	}

	m.modal.HandleKey(msg)
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.ctrl.Fields()
	if len(fields) == 0 {
		m.state = StateBrowse
		return m, nil
	}
	field := fields[m.filter.Focus()]

	if m.filter.Editing() {
		switch msg.String() {
		case "enter":
			m.ctrl.SetField(field.Name, m.filter.CommitEdit())
		case "esc":
			m.filter.CancelEdit()
		default:
			m.filter.UpdateEdit(msg)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Back):
		m.state = StateBrowse
		return m, nil

	case key.Matches(msg, m.keymap.Apply):
		m.state = StateBrowse
		m2, cmd := m.submit()
		return m2, cmd

	case key.Matches(msg, m.keymap.Reset):
		m.state = StateBrowse
		m2, cmd := m.reset()
		return m2, cmd
	}

	switch msg.String() {
	case "tab", "down", "j":
		m.filter.Next(len(fields))
		return m, nil
	case "shift+tab", "up", "k":
		m.filter.Prev(len(fields))
		return m, nil
	case "left", "h":
		switch field.Kind {
		case report.FieldSelect:
			m.ctrl.SetField(field.Name, cycleValue(field, -1))
		case report.FieldMultiSelect:
			m.filter.MoveOption(field, -1)
		}
		return m, nil
	case "right", "l":
		switch field.Kind {
		case report.FieldSelect:
			m.ctrl.SetField(field.Name, cycleValue(field, 1))
		case report.FieldMultiSelect:
			m.filter.MoveOption(field, 1)
		}
		return m, nil
	case " ":
		switch field.Kind {
		case report.FieldSelect:
			m.ctrl.SetField(field.Name, cycleValue(field, 1))
		case report.FieldMultiSelect:
			m.ctrl.ToggleField(field.Name, m.filter.OptionValue(field))
		}
		return m, nil
	case "enter":
		switch field.Kind {
		case report.FieldText, report.FieldDate:
			m.filter.StartEdit(field)
		case report.FieldSelect:
			m.ctrl.SetField(field.Name, cycleValue(field, 1))
		case report.FieldMultiSelect:
			m.ctrl.ToggleField(field.Name, m.filter.OptionValue(field))
		}
		return m, nil
	}

	return m, nil
}

// cycleValue returns the select option after or before the current one.
func cycleValue(field report.Field, dir int) string {
	if len(field.Options) == 0 {
		return field.Value
	}
	idx := 0
	for i, o := range field.Options {
		if o.Value == field.Value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(field.Options)) % len(field.Options)
	return field.Options[idx].Value
}
