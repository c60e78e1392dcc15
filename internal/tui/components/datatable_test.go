package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

func wideColumns() []report.Column {
	return []report.Column{
		{Key: "code", Title: "Code", Width: 12},
		{Key: "date", Title: "Date", Width: 12},
		{Key: "patient", Title: "Patient", Width: 12},
		{Key: "amount", Title: "Amount", Width: 12},
	}
}

func TestDataTableColumnWindow(t *testing.T) {
	d := NewDataTable(wideColumns(), "no rows", themes.Default)
	d.SetSize(30, 8) // fits two columns
	d.SetRows([][]string{{"HD001", "2024-01-01", "Nguyen Van An", "500,000"}})

	assert.False(t, d.CanScrollLeft())
	assert.True(t, d.CanScrollRight())

	view := d.View()
	assert.Contains(t, view, "Code")
	assert.NotContains(t, view, "Amount")

	d.ScrollRight()
	d.ScrollRight()
	assert.True(t, d.CanScrollLeft())
	assert.False(t, d.CanScrollRight())
	assert.Contains(t, d.View(), "Amount")

	// Scrolling past the last window is a no-op.
	d.ScrollRight()
	assert.Contains(t, d.View(), "Amount")

	d.ScrollLeft()
	d.ScrollLeft()
	assert.False(t, d.CanScrollLeft())
	d.ScrollLeft()
	assert.Contains(t, d.View(), "Code")
}

func TestDataTableScrollHintShownOnce(t *testing.T) {
	d := NewDataTable(wideColumns(), "no rows", themes.Default)
	d.SetSize(30, 8)
	d.SetRows([][]string{{"HD001", "2024-01-01", "Nguyen Van An", "500,000"}})

	require.Contains(t, d.View(), "more columns")

	d.ScrollRight()
	d.ScrollLeft()
	assert.NotContains(t, d.View(), "more columns")
}

func TestDataTableLoadingAndEmpty(t *testing.T) {
	d := NewDataTable(wideColumns(), "No invoices match the current filters", themes.Default)
	d.SetSize(80, 8)

	d.SetLoading(true)
	assert.Contains(t, d.View(), "Loading")

	d.SetLoading(false)
	d.SetRows(nil)
	assert.Contains(t, d.View(), "No invoices match the current filters")
}

func TestDataTableCursorResetOnShorterPage(t *testing.T) {
	d := NewDataTable(wideColumns(), "no rows", themes.Default)
	d.SetSize(80, 8)
	d.SetRows([][]string{
		{"HD001", "a", "b", "c"},
		{"HD002", "a", "b", "c"},
		{"HD003", "a", "b", "c"},
	})
	assert.Equal(t, 0, d.Cursor())

	// A shorter page pulls the cursor back in range.
	d.SetRows([][]string{{"HD009", "a", "b", "c"}})
	assert.Equal(t, 0, d.Cursor())
}
