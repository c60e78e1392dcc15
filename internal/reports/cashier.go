package reports

import (
	"context"
	"net/url"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/model"
	"github.com/bekendz87/droh-admin/internal/report"
)

func cashierColumns() []report.ColumnDef[model.CashierRecord] {
	return []report.ColumnDef[model.CashierRecord]{
		{
			Column: report.Column{Key: "code", Title: "Code", Width: 10},
			Value:  func(r model.CashierRecord) string { return r.Code },
		},
		{
			Column: report.Column{Key: "created_at", Title: "Date", Width: 16},
			Value:  func(r model.CashierRecord) string { return formatTime(r.CreatedAt) },
		},
		{
			Column: report.Column{Key: "cashier_name", Title: "Cashier", Width: 18},
			Value:  func(r model.CashierRecord) string { return r.CashierName },
		},
		{
			Column: report.Column{Key: "patient_name", Title: "Patient", Width: 22},
			Value:  func(r model.CashierRecord) string { return r.PatientName },
		},
		{
			Column: report.Column{Key: "kind", Title: "Kind", Width: 10},
			Value:  func(r model.CashierRecord) string { return string(r.Kind) },
			Render: func(v string, r model.CashierRecord, _ int) string {
				if r.Kind == model.CashierWithdraw {
					return "− " + v
				}
				return "+ " + v
			},
		},
		{
			Column: report.Column{Key: "payment_source", Title: "Source", Width: 10},
			Value:  func(r model.CashierRecord) string { return string(r.Source) },
		},
		{
			Column: report.Column{Key: "amount", Title: "Amount", Width: 12},
			Value:  func(r model.CashierRecord) string { return formatMoney(r.Amount) },
		},
		{
			Column: report.Column{Key: "balance", Title: "Balance", Width: 12},
			Value:  func(r model.CashierRecord) string { return formatMoney(r.Balance) },
		},
	}
}

func cashierFields() []report.Field {
	fields := dateRangeFields()
	return append(fields,
		report.Field{
			Kind:  report.FieldSelect,
			Name:  "kind",
			Label: "Kind",
			Value: "all",
			Options: []report.Option{
				{Value: "all", Label: "All"},
				{Value: string(model.CashierTopUp), Label: "Top-ups"},
				{Value: string(model.CashierWithdraw), Label: "Withdrawals"},
			},
		},
		report.Field{
			Kind:        report.FieldMultiSelect,
			Name:        "sources",
			Label:       "Sources",
			Placeholder: "All sources",
			Options: []report.Option{
				{Value: "cash", Label: "Cash"},
				{Value: "transfer", Label: "Transfer"},
				{Value: "card", Label: "Card"},
			},
		},
		report.Field{
			Kind:        report.FieldText,
			Name:        "cashier",
			Label:       "Cashier",
			Placeholder: "cashier name",
		},
	)
}

// Cashier builds the cashier / top-up report schema. It is read-only:
// cash desk corrections go through the invoice workflows.
func Cashier(deps Deps) report.Schema {
	cols := cashierColumns()

	return report.Schema{
		Name:        "cashier",
		Title:       "Cashier / Top-ups",
		EmptyText:   "No cashier activity for the current filters",
		ExportTitle: "Cashier report",
		Columns:     report.Columns(cols),
		Defaults:    cashierFields,
		Fetch: func(ctx context.Context, params url.Values) (report.PageData, error) {
			page, err := deps.API.ListCashierRecords(ctx, params)
			if err != nil {
				return report.PageData{}, err
			}
			return report.PageData{
				Cells:   report.Cells(cols, page.List),
				Count:   page.Count,
				Summary: summaryStats(page.Report),
			}, nil
		},
		Export: func(ctx context.Context, params url.Values) (string, error) {
			return deps.API.Download(ctx, api.PathCashier, params, deps.Downloads)
		},
	}
}
