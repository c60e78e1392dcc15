package report

import (
	"context"
	"net/url"
)

// defaultLimit is the page size when a schema does not set one.
const defaultLimit = 20

// Column describes one table column of a report.
type Column struct {
	Key   string
	Title string
	Width int
}

// ColumnDef binds a column to a typed record: Value extracts the raw
// cell and the optional Render decorates it. Without Render the raw
// value is shown as-is.
type ColumnDef[T any] struct {
	Value  func(rec T) string
	Render func(value string, rec T, index int) string
	Column
}

// Columns strips the typed parts of a definition list for the renderer.
func Columns[T any](defs []ColumnDef[T]) []Column {
	cols := make([]Column, len(defs))
	for i, d := range defs {
		cols[i] = d.Column
	}
	return cols
}

// Cells renders a record list to display cells, left to right in column
// order.
func Cells[T any](defs []ColumnDef[T], list []T) [][]string {
	rows := make([][]string, len(list))
	for i, rec := range list {
		row := make([]string, len(defs))
		for j, d := range defs {
			value := ""
			if d.Value != nil {
				value = d.Value(rec)
			}
			if d.Render != nil {
				value = d.Render(value, rec, i)
			}
			row[j] = value
		}
		rows[i] = row
	}
	return rows
}

// Stat is one aggregate figure shown above the table.
type Stat struct {
	Label string
	Value string
}

// PageData is the display-ready result of one fetched page.
type PageData struct {
	Cells   [][]string
	Summary []Stat
	Count   int
}

// FetchFunc loads one page of a report for the given query parameters.
type FetchFunc func(ctx context.Context, params url.Values) (PageData, error)

// ExportFunc streams a server-side export for the given query parameters
// and returns the local path it was written to.
type ExportFunc func(ctx context.Context, params url.Values) (string, error)

// Schema declares one report route: its columns, filter defaults, data
// source and row actions. Every report page is an instantiation of this
// one shape.
type Schema struct {
	Fetch       FetchFunc
	Export      ExportFunc
	Defaults    func() []Field
	Name        string
	Title       string
	EmptyText   string
	ExportTitle string
	Columns     []Column
	Actions     []Action
	Limit       int
}

// PageSize is the effective page limit.
func (s Schema) PageSize() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return defaultLimit
}
