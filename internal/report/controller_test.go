package report

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() Schema {
	return Schema{
		Name:  "invoices",
		Title: "Invoices",
		Limit: 10,
		Defaults: func() []Field {
			return []Field{
				{Kind: FieldDate, Name: "from", Label: "From", Value: "2024-01-01"},
				{Kind: FieldDate, Name: "to", Label: "To", Value: "2024-01-01", EndOfDay: true},
				{Kind: FieldSelect, Name: "invoiceType", Label: "Type", Value: "all"},
			}
		},
	}
}

func loadedPage(rows, count int) PageData {
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = []string{"x"}
	}
	return PageData{Cells: cells, Count: count}
}

func TestSubmitTransitions(t *testing.T) {
	c := NewController(testSchema())
	assert.Equal(t, StateIdle, c.State())

	gen, params, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateLoading, c.State())
	assert.True(t, c.Loading())
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "10", params.Get("limit"))

	ok := c.Apply(gen, loadedPage(10, 35), nil)
	assert.True(t, ok)
	assert.Equal(t, StateLoaded, c.State())
	assert.Equal(t, 4, c.TotalPages())
	assert.Equal(t, 1, c.Page())
	assert.Empty(t, c.Err())
}

func TestSubmitResetsToPageOne(t *testing.T) {
	c := NewController(testSchema())

	gen, _, err := c.ChangePage(3)
	require.NoError(t, err)
	c.Apply(gen, loadedPage(10, 50), nil)
	assert.Equal(t, 3, c.Page())

	gen, params, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, "1", params.Get("page"))
	c.Apply(gen, loadedPage(10, 50), nil)
	assert.Equal(t, 1, c.Page())
}

func TestChangePagePreservesFilters(t *testing.T) {
	c := NewController(testSchema())
	c.SetField("invoiceType", "all_recharge")

	_, params, err := c.ChangePage(2)
	require.NoError(t, err)

	assert.Equal(t, "all_recharge", params.Get("invoiceType"))
	assert.Equal(t, "2", params.Get("page"))
}

func TestFetchErrorClearsList(t *testing.T) {
	c := NewController(testSchema())

	gen, _, err := c.Submit()
	require.NoError(t, err)
	c.Apply(gen, loadedPage(5, 5), nil)

	gen, _, err = c.Submit()
	require.NoError(t, err)
	ok := c.Apply(gen, PageData{}, errors.New("X"))

	assert.True(t, ok)
	assert.Equal(t, StateErrored, c.State())
	assert.Equal(t, "X", c.Err())
	assert.Empty(t, c.Data().Cells)
}

func TestStaleResponseDiscarded(t *testing.T) {
	c := NewController(testSchema())

	oldGen, _, err := c.Submit()
	require.NoError(t, err)
	newGen, _, err := c.Submit()
	require.NoError(t, err)
	require.NotEqual(t, oldGen, newGen)

	// The newer fetch resolves first.
	assert.True(t, c.Apply(newGen, loadedPage(2, 2), nil))
	assert.Equal(t, StateLoaded, c.State())

	// The stale response must not overwrite it.
	assert.False(t, c.Apply(oldGen, loadedPage(9, 90), nil))
	assert.Equal(t, 2, c.Data().Count)
	assert.Equal(t, StateLoaded, c.State())
}

func TestStaleErrorDiscarded(t *testing.T) {
	c := NewController(testSchema())

	oldGen, _, err := c.Submit()
	require.NoError(t, err)
	newGen, _, err := c.Submit()
	require.NoError(t, err)

	assert.True(t, c.Apply(newGen, loadedPage(1, 1), nil))
	assert.False(t, c.Apply(oldGen, PageData{}, errors.New("timeout")))
	assert.Empty(t, c.Err())
}

func TestResetIdempotent(t *testing.T) {
	c := NewController(testSchema())
	c.SetField("invoiceType", "refund")
	c.SetField("from", "2023-06-15")

	_, first, err := c.Reset()
	require.NoError(t, err)
	_, second, err := c.Reset()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "all", c.Field("invoiceType").Value)
	assert.Equal(t, "1", second.Get("page"))
}

func TestExportParamsRequireDateRange(t *testing.T) {
	c := NewController(testSchema())
	c.SetField("from", "")

	_, err := c.ExportParams(ExportExcel)
	assert.Error(t, err)
}

func TestExportParamsCarryExportKind(t *testing.T) {
	schema := testSchema()
	schema.ExportTitle = "Invoice report"
	c := NewController(schema)

	params, err := c.ExportParams(ExportPDF)
	require.NoError(t, err)

	assert.Equal(t, "pdf", params.Get("export"))
	assert.Equal(t, "Invoice report", params.Get("title"))
	// Export never mutates fetch state.
	assert.Equal(t, StateIdle, c.State())
}

func TestChangePageClampsKnownBounds(t *testing.T) {
	c := NewController(testSchema())

	gen, _, err := c.Submit()
	require.NoError(t, err)
	c.Apply(gen, loadedPage(10, 30), nil)

	_, params, err := c.ChangePage(99)
	require.NoError(t, err)
	assert.Equal(t, "3", params.Get("page"))

	_, params, err = c.ChangePage(0)
	require.NoError(t, err)
	assert.Equal(t, "1", params.Get("page"))
}

func TestValidationFailureLeavesStateUntouched(t *testing.T) {
	c := NewController(testSchema())

	gen, _, err := c.Submit()
	require.NoError(t, err)
	c.Apply(gen, loadedPage(3, 3), nil)

	c.SetField("from", "garbage")
	_, _, err = c.Submit()
	require.Error(t, err)

	assert.Equal(t, StateLoaded, c.State())
	assert.Equal(t, 3, c.Data().Count)
}

func TestApplyEmptyResult(t *testing.T) {
	c := NewController(testSchema())

	gen, _, err := c.Submit()
	require.NoError(t, err)
	c.Apply(gen, PageData{Count: 0}, nil)

	assert.Equal(t, StateLoaded, c.State())
	assert.Equal(t, 0, c.TotalPages())
	assert.Equal(t, 1, c.Page())
}

func TestCellsRenderFallback(t *testing.T) {
	type rec struct{ Code, Name string }

	defs := []ColumnDef[rec]{
		{Column: Column{Key: "code", Title: "Code"}, Value: func(r rec) string { return r.Code }},
		{
			Column: Column{Key: "name", Title: "Name"},
			Value:  func(r rec) string { return r.Name },
			Render: func(v string, _ rec, i int) string { return v + "!" },
		},
	}

	rows := Cells(defs, []rec{{Code: "A1", Name: "An"}, {Code: "B2", Name: "Binh"}})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"A1", "An!"}, rows[0])
	assert.Equal(t, []string{"B2", "Binh!"}, rows[1])
}

func TestBuildParamsType(t *testing.T) {
	// Guards the exact wire scenario for the invoice report defaults.
	fields := []Field{
		{Kind: FieldDate, Name: "from", Label: "From", Value: "2024-01-01"},
		{Kind: FieldDate, Name: "to", Label: "To", Value: "2024-01-01", EndOfDay: true},
		{Kind: FieldSelect, Name: "invoiceType", Label: "Type", Value: "all_recharge"},
	}

	params, err := BuildParams(fields, 1, 20)
	require.NoError(t, err)

	want := url.Values{}
	want.Set("from", "2024-01-01T00:00:00.000Z")
	want.Set("to", "2024-01-01T23:59:59.999Z")
	want.Set("invoiceType", "all_recharge")
	want.Set("page", "1")
	want.Set("limit", "20")

	assert.Equal(t, want, params)
}
