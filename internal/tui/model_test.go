package tui

import (
	"context"
	"errors"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

func testSchema(fetch report.FetchFunc) report.Schema {
	return report.Schema{
		Name:        "invoices",
		Title:       "Invoices",
		EmptyText:   "no rows",
		ExportTitle: "Invoice report",
		Columns: []report.Column{
			{Key: "code", Title: "Code", Width: 10},
			{Key: "amount", Title: "Amount", Width: 12},
		},
		Defaults: func() []report.Field {
			return []report.Field{
				{Kind: report.FieldDate, Name: "from", Label: "From", Value: "2024-01-01"},
				{Kind: report.FieldDate, Name: "to", Label: "To", Value: "2024-01-02", EndOfDay: true},
			}
		},
		Fetch: fetch,
	}
}

func staticFetch(data report.PageData) report.FetchFunc {
	return func(context.Context, url.Values) (report.PageData, error) {
		return data, nil
	}
}

func testModel(schema report.Schema) Model {
	return newModel(Config{
		Schema:    schema,
		Theme:     themes.Default,
		Downloads: "/tmp",
		AlertTTL:  5 * time.Millisecond,
		Width:     100,
		Height:    30,
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pageOne() report.PageData {
	return report.PageData{
		Cells: [][]string{{"HD001", "500,000"}},
		Count: 1,
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	m := testModel(testSchema(staticFetch(pageOne())))
	_ = m.Init() // generation 1

	// A refresh supersedes the first fetch before it lands.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	// The stale generation-1 response arrives and must change nothing.
	next, _ = m.Update(pageMsg{gen: 1, data: report.PageData{Cells: [][]string{{"OLD", "1"}}, Count: 1}})
	m = next.(Model)
	assert.Equal(t, report.StateLoading, m.ctrl.State())

	// The live generation-2 response lands.
	next, _ = m.Update(pageMsg{gen: 2, data: pageOne()})
	m = next.(Model)
	assert.Equal(t, report.StateLoaded, m.ctrl.State())
	assert.Equal(t, "HD001", m.ctrl.Data().Cells[0][0])
}

func TestStaleErrorDiscarded(t *testing.T) {
	m := testModel(testSchema(staticFetch(pageOne())))
	_ = m.Init() // generation 1
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)

	next, _ = m.Update(pageMsg{gen: 1, err: errors.New("boom")})
	m = next.(Model)
	assert.NotEqual(t, report.StateErrored, m.ctrl.State())

	next, _ = m.Update(pageMsg{gen: 2, data: pageOne()})
	m = next.(Model)
	assert.Equal(t, report.StateLoaded, m.ctrl.State())
}

func TestFetchErrorShowsAlertAndBanner(t *testing.T) {
	m := testModel(testSchema(staticFetch(pageOne())))
	_ = m.Init()

	next, cmd := m.Update(pageMsg{gen: 1, err: common.NewUserError("Session expired", common.ErrUnauthorized)})
	m = next.(Model)

	assert.Equal(t, report.StateErrored, m.ctrl.State())
	assert.Equal(t, "Session expired", m.ctrl.Err())
	require.NotNil(t, m.notifier.Current())
	assert.Equal(t, AlertError, m.notifier.Current().Kind)
	assert.NotNil(t, cmd)

	// The banner stays up in the rendered view.
	assert.Contains(t, m.View(), "Session expired")
}

func TestModalSubmitLock(t *testing.T) {
	var submits atomic.Int64

	schema := testSchema(staticFetch(pageOne()))
	schema.Actions = []report.Action{{
		Name:  "refund",
		Title: "Refund invoice",
		Key:   "r",
		Build: func(int) (*report.Form, error) {
			return &report.Form{
				Title:  "Refund HD001",
				Fields: []report.FormField{{Name: "reason", Label: "Reason", Required: true, Value: "dup"}},
				Submit: func(context.Context, map[string]string) (string, error) {
					submits.Add(1)
					return "Refund completed", nil
				},
			}, nil
		},
	}}

	m := testModel(schema)
	_ = m.Init()
	next, _ := m.Update(pageMsg{gen: 1, data: pageOne()})
	m = next.(Model)

	// Open the modal.
	next, _ = m.Update(keyRunes("r"))
	m = next.(Model)
	require.Equal(t, StateModal, m.state)
	require.NotNil(t, m.modal)

	// First enter starts the submission and locks the modal.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.modal.Submitting())

	// While locked, neither a second enter nor escape does anything.
	next, cmd2 := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd2)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, StateModal, m.state)

	// Run the one in-flight submission.
	msg := cmd()
	done, ok := msg.(modalDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, int64(1), submits.Load())

	// Success closes the modal, toasts and refreshes.
	next, after := m.Update(done)
	m = next.(Model)
	assert.Equal(t, StateBrowse, m.state)
	assert.Nil(t, m.modal)
	require.NotNil(t, m.notifier.Current())
	assert.Equal(t, "Refund completed", m.notifier.Current().Text)
	assert.NotNil(t, after)
}

func TestModalValidationFailureStaysOpen(t *testing.T) {
	schema := testSchema(staticFetch(pageOne()))
	schema.Actions = []report.Action{{
		Name:  "refund",
		Title: "Refund invoice",
		Key:   "r",
		Build: func(int) (*report.Form, error) {
			return &report.Form{
				Title:  "Refund HD001",
				Fields: []report.FormField{{Name: "reason", Label: "Reason", Required: true}},
				Submit: func(context.Context, map[string]string) (string, error) {
					t.Fatal("submit must not run on a validation failure")
					return "", nil
				},
			}, nil
		},
	}}

	m := testModel(schema)
	_ = m.Init()
	next, _ := m.Update(pageMsg{gen: 1, data: pageOne()})
	m = next.(Model)
	next, _ = m.Update(keyRunes("r"))
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, StateModal, m.state)
	assert.False(t, m.modal.Submitting())
	assert.Equal(t, "Reason is required", m.modal.Err())
}

func TestModalBackendFailureKeepsValues(t *testing.T) {
	schema := testSchema(staticFetch(pageOne()))
	schema.Actions = []report.Action{{
		Name:  "refund",
		Title: "Refund invoice",
		Key:   "r",
		Build: func(int) (*report.Form, error) {
			return &report.Form{
				Title:  "Refund HD001",
				Fields: []report.FormField{{Name: "reason", Label: "Reason", Value: "duplicate charge"}},
				Submit: func(context.Context, map[string]string) (string, error) {
					return "", common.NewUserError("Invoice already refunded", common.ErrBackend)
				},
			}, nil
		},
	}}

	m := testModel(schema)
	_ = m.Init()
	next, _ := m.Update(pageMsg{gen: 1, data: pageOne()})
	m = next.(Model)
	next, _ = m.Update(keyRunes("r"))
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)

	next, _ = m.Update(cmd())
	m = next.(Model)

	assert.Equal(t, StateModal, m.state)
	require.NotNil(t, m.modal)
	assert.False(t, m.modal.Submitting())
	assert.Equal(t, "Invoice already refunded", m.modal.Err())
	assert.Equal(t, "duplicate charge", m.modal.Form().FieldByName("reason").Value)
}

func TestExportWithoutDatesWarnsWithoutNetwork(t *testing.T) {
	var exports atomic.Int64

	schema := testSchema(staticFetch(pageOne()))
	schema.Defaults = func() []report.Field {
		return []report.Field{
			{Kind: report.FieldDate, Name: "from", Label: "From"},
			{Kind: report.FieldDate, Name: "to", Label: "To", EndOfDay: true},
		}
	}
	schema.Export = func(context.Context, url.Values) (string, error) {
		exports.Add(1)
		return "", nil
	}

	m := testModel(schema)
	_ = m.Init()

	next, _ := m.Update(keyRunes("e"))
	m = next.(Model)

	require.NotNil(t, m.notifier.Current())
	assert.Equal(t, AlertWarning, m.notifier.Current().Kind)
	assert.Equal(t, int64(0), exports.Load())
}

func TestExportWithDatesRuns(t *testing.T) {
	var exports atomic.Int64

	schema := testSchema(staticFetch(pageOne()))
	schema.Export = func(context.Context, url.Values) (string, error) {
		exports.Add(1)
		return "/tmp/report.xlsx", nil
	}

	m := testModel(schema)
	_ = m.Init()

	next, cmd := m.Update(keyRunes("e"))
	m = next.(Model)
	require.NotNil(t, cmd)

	// Drain the batch: one alert tick, one export command.
	drained := drain(t, cmd)
	var done exportDoneMsg
	found := false
	for _, msg := range drained {
		if d, ok := msg.(exportDoneMsg); ok {
			done = d
			found = true
		}
	}
	require.True(t, found)
	require.NoError(t, done.err)
	assert.Equal(t, "/tmp/report.xlsx", done.path)
	assert.Equal(t, int64(1), exports.Load())
}

// drain executes a command tree and collects the produced messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			out = append(out, drain(t, sub)...)
		}
	default:
		out = append(out, msg)
	}
	return out
}

func TestPageNavigationBounds(t *testing.T) {
	fetches := 0
	fetch := func(context.Context, url.Values) (report.PageData, error) {
		fetches++
		return report.PageData{}, nil
	}

	m := testModel(testSchema(fetch))
	_ = m.Init()

	// One page of data: both directions are dead ends.
	next, _ := m.Update(pageMsg{gen: 1, data: pageOne()})
	m = next.(Model)
	require.Equal(t, 1, m.ctrl.TotalPages())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	assert.Nil(t, cmd)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.ctrl.Page())
	assert.Equal(t, 0, fetches)
}

func TestFilterEditRoundTrip(t *testing.T) {
	schema := testSchema(staticFetch(pageOne()))
	schema.Defaults = func() []report.Field {
		return []report.Field{
			{Kind: report.FieldText, Name: "patient", Label: "Patient"},
			{Kind: report.FieldSelect, Name: "invoiceType", Label: "Type", Value: "all", Options: []report.Option{
				{Value: "all", Label: "All"},
				{Value: "payment", Label: "Payments"},
			}},
		}
	}

	m := testModel(schema)
	_ = m.Init()

	// Enter filter mode, edit the text field.
	next, _ := m.Update(keyRunes("f"))
	m = next.(Model)
	require.Equal(t, StateFilter, m.state)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.filter.Editing())

	next, _ = m.Update(keyRunes("an"))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, "an", m.ctrl.Field("patient").Value)

	// Move to the select and cycle it.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, "payment", m.ctrl.Field("invoiceType").Value)

	// Apply resubmits from page one and returns to browsing.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	assert.Equal(t, StateBrowse, m.state)
	assert.NotNil(t, cmd)
	assert.True(t, m.ctrl.Loading())
}

func TestActionOnUnsupportedRowWarns(t *testing.T) {
	schema := testSchema(staticFetch(pageOne()))
	schema.Actions = []report.Action{{
		Name:  "refund",
		Title: "Refund invoice",
		Key:   "r",
		Build: func(int) (*report.Form, error) {
			return nil, common.NewUserError("invoice HD001 has nothing left to refund", common.ErrValidation)
		},
	}}

	m := testModel(schema)
	_ = m.Init()
	next, _ := m.Update(pageMsg{gen: 1, data: pageOne()})
	m = next.(Model)

	next, _ = m.Update(keyRunes("r"))
	m = next.(Model)

	assert.Equal(t, StateBrowse, m.state)
	assert.Nil(t, m.modal)
	require.NotNil(t, m.notifier.Current())
	assert.Equal(t, AlertWarning, m.notifier.Current().Kind)
}
