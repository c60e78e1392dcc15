// Package components holds the building blocks of the report workspace:
// the data table, the filter bar and the pagination footer.
package components

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// DataTable renders one page of report cells. Reports routinely carry
// more columns than a terminal is wide, so the table shows a window of
// columns that scrolls horizontally while the row cursor stays put.
type DataTable struct {
	theme     themes.Theme
	emptyText string
	columns   []report.Column
	rows      [][]string
	table     table.Model
	offset    int
	width     int
	height    int
	loading   bool
	hinted    bool
}

// NewDataTable creates a table for the given column layout.
func NewDataTable(columns []report.Column, emptyText string, theme themes.Theme) DataTable {
	t := table.New(table.WithFocused(true))

	styles := table.DefaultStyles()
	styles.Header = theme.TableHeader
	styles.Selected = theme.Selected
	t.SetStyles(styles)

	d := DataTable{
		theme:     theme,
		emptyText: emptyText,
		columns:   columns,
		table:     t,
		width:     80,
		height:    10,
	}
	d.rebuild()
	return d
}

// SetSize resizes the table viewport.
func (d *DataTable) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.rebuild()
}

// SetLoading toggles the loading placeholder.
func (d *DataTable) SetLoading(loading bool) {
	d.loading = loading
}

// SetRows replaces the visible page.
func (d *DataTable) SetRows(rows [][]string) {
	d.rows = rows
	d.rebuild()
	if d.table.Cursor() >= len(rows) {
		d.table.SetCursor(0)
	}
}

// Cursor returns the selected row index.
func (d *DataTable) Cursor() int {
	return d.table.Cursor()
}

// Update forwards navigation keys to the underlying table.
func (d *DataTable) Update(msg tea.Msg) {
	d.table, _ = d.table.Update(msg)
}

// visible returns how many columns fit the current width, at least one.
func (d *DataTable) visible() int {
	used := 0
	count := 0
	for _, col := range d.columns[d.offset:] {
		used += col.Width + 2
		if count > 0 && used > d.width {
			break
		}
		count++
	}
	if count == 0 {
		count = 1
	}
	return count
}

// CanScrollLeft reports whether columns are hidden on the left.
func (d *DataTable) CanScrollLeft() bool {
	return d.offset > 0
}

// CanScrollRight reports whether columns are hidden on the right.
func (d *DataTable) CanScrollRight() bool {
	return d.offset+d.visible() < len(d.columns)
}

// ScrollLeft shifts the column window one column left.
func (d *DataTable) ScrollLeft() {
	if !d.CanScrollLeft() {
		return
	}
	d.offset--
	d.hinted = true
	d.rebuild()
}

// ScrollRight shifts the column window one column right.
func (d *DataTable) ScrollRight() {
	if !d.CanScrollRight() {
		return
	}
	d.offset++
	d.hinted = true
	d.rebuild()
}

func (d *DataTable) rebuild() {
	if d.offset >= len(d.columns) {
		d.offset = 0
	}
	end := d.offset + d.visible()
	if end > len(d.columns) {
		end = len(d.columns)
	}

	cols := make([]table.Column, 0, end-d.offset)
	for _, c := range d.columns[d.offset:end] {
		cols = append(cols, table.Column{Title: c.Title, Width: c.Width})
	}

	rows := make([]table.Row, 0, len(d.rows))
	for _, r := range d.rows {
		if len(r) < end {
			continue
		}
		rows = append(rows, table.Row(r[d.offset:end]))
	}

	cursor := d.table.Cursor()
	d.table.SetRows(nil)
	d.table.SetColumns(cols)
	d.table.SetRows(rows)
	if cursor < len(rows) {
		d.table.SetCursor(cursor)
	}
	if d.height > 0 {
		d.table.SetHeight(d.height)
	}
}

// View renders the table, or a placeholder row while loading or empty.
func (d *DataTable) View() string {
	if d.loading {
		return d.placeholder(d.theme.StatusPending.Render("Loading..."))
	}
	if len(d.rows) == 0 {
		return d.placeholder(d.theme.Faint.Render(d.emptyText))
	}

	view := d.table.View()
	if d.CanScrollRight() && !d.hinted {
		view += "\n" + d.theme.Faint.Render("more columns to the right, press ] to scroll")
	}
	return view
}

func (d *DataTable) placeholder(text string) string {
	return lipgloss.Place(d.width, 3, lipgloss.Center, lipgloss.Center, text)
}
