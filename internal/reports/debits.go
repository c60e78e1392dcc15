package reports

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/model"
	"github.com/bekendz87/droh-admin/internal/report"
)

func debitColumns() []report.ColumnDef[model.Debit] {
	return []report.ColumnDef[model.Debit]{
		{
			Column: report.Column{Key: "code", Title: "Code", Width: 10},
			Value:  func(d model.Debit) string { return d.Code },
		},
		{
			Column: report.Column{Key: "created_at", Title: "Date", Width: 16},
			Value:  func(d model.Debit) string { return formatTime(d.CreatedAt) },
		},
		{
			Column: report.Column{Key: "creator_name", Title: "Creator", Width: 18},
			Value:  func(d model.Debit) string { return d.CreatorName },
		},
		{
			Column: report.Column{Key: "payee_name", Title: "Payee", Width: 18},
			Value:  func(d model.Debit) string { return d.PayeeName },
		},
		{
			Column: report.Column{Key: "amount", Title: "Amount", Width: 12},
			Value:  func(d model.Debit) string { return formatMoney(d.Amount) },
		},
		{
			Column: report.Column{Key: "status", Title: "Status", Width: 10},
			Value:  func(d model.Debit) string { return string(d.Status) },
		},
		{
			Column: report.Column{Key: "returned_at", Title: "Returned", Width: 16},
			Value: func(d model.Debit) string {
				if d.ReturnedAt == nil {
					return ""
				}
				return formatTime(*d.ReturnedAt)
			},
		},
		{
			Column: report.Column{Key: "reference", Title: "Reference", Width: 14},
			Value:  func(d model.Debit) string { return d.Reference },
		},
	}
}

func debitFields() []report.Field {
	fields := dateRangeFields()
	return append(fields,
		report.Field{
			Kind:  report.FieldSelect,
			Name:  "status",
			Label: "Status",
			Value: "all",
			Options: []report.Option{
				{Value: "all", Label: "All"},
				{Value: string(model.DebitPending), Label: "Pending"},
				{Value: string(model.DebitApproved), Label: "Approved"},
				{Value: string(model.DebitReturned), Label: "Returned"},
				{Value: string(model.DebitRejected), Label: "Rejected"},
			},
		},
		report.Field{
			Kind:        report.FieldText,
			Name:        "creator",
			Label:       "Creator",
			Placeholder: "creator name",
		},
	)
}

// Debits builds the debit / refund-request report schema with the
// mark-as-returned row action.
func Debits(deps Deps) report.Schema {
	cols := debitColumns()
	rows := &cache[model.Debit]{}

	return report.Schema{
		Name:        "debits",
		Title:       "Debits / Refund requests",
		EmptyText:   "No debit requests match the current filters",
		ExportTitle: "Debit report",
		Columns:     report.Columns(cols),
		Defaults:    debitFields,
		Fetch: func(ctx context.Context, params url.Values) (report.PageData, error) {
			page, err := deps.API.ListDebits(ctx, params)
			if err != nil {
				return report.PageData{}, err
			}
			rows.set(page.List)
			return report.PageData{
				Cells:   report.Cells(cols, page.List),
				Count:   page.Count,
				Summary: summaryStats(page.Report),
			}, nil
		},
		Export: func(ctx context.Context, params url.Values) (string, error) {
			return deps.API.Download(ctx, api.PathDebits, params, deps.Downloads)
		},
		Actions: []report.Action{
			returnDebitAction(deps, rows),
		},
	}
}

func returnDebitAction(deps Deps, rows *cache[model.Debit]) report.Action {
	return report.Action{
		Name:  "return",
		Title: "Mark as returned",
		Key:   "m",
		Build: func(row int) (*report.Form, error) {
			debit, ok := rows.at(row)
			if !ok {
				return nil, common.NewUserError("select a debit first", common.ErrValidation)
			}
			if !debit.Returnable() {
				return nil, common.NewUserError(
					fmt.Sprintf("debit %s is already %s", debit.Code, debit.Status),
					common.ErrValidation,
				)
			}

			return &report.Form{
				Title: fmt.Sprintf("Return %s (%s)", debit.Code, formatMoney(debit.Amount)),
				Fields: []report.FormField{
					{Name: "note", Label: "Note", Kind: report.FormText, Placeholder: "optional note"},
				},
				Submit: func(ctx context.Context, values map[string]string) (string, error) {
					return deps.API.MarkDebitReturned(ctx, api.ReturnDebitInput{
						DebitID: debit.ID,
						Note:    values["note"],
					})
				},
				Notify: func(ctx context.Context, _ map[string]string) error {
					return deps.API.CreateNotification(ctx, model.NewNotification(
						model.NotifyDebit,
						deps.Session.UserID,
						debit.ID,
						"Debit returned",
						fmt.Sprintf("%s marked debit %s as returned", deps.Session.Username, debit.Code),
					))
				},
			}, nil
		},
	}
}
