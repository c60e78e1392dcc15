package reports

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/model"
	"github.com/bekendz87/droh-admin/internal/report"
)

func invoiceColumns() []report.ColumnDef[model.Invoice] {
	return []report.ColumnDef[model.Invoice]{
		{
			Column: report.Column{Key: "code", Title: "Code", Width: 10},
			Value:  func(i model.Invoice) string { return i.Code },
		},
		{
			Column: report.Column{Key: "created_at", Title: "Date", Width: 16},
			Value:  func(i model.Invoice) string { return formatTime(i.CreatedAt) },
		},
		{
			Column: report.Column{Key: "patient_name", Title: "Patient", Width: 22},
			Value:  func(i model.Invoice) string { return i.PatientName },
		},
		{
			Column: report.Column{Key: "invoice_type", Title: "Type", Width: 10},
			Value:  func(i model.Invoice) string { return string(i.Type) },
		},
		{
			Column: report.Column{Key: "payment_source", Title: "Source", Width: 10},
			Value:  func(i model.Invoice) string { return string(i.Source) },
		},
		{
			Column: report.Column{Key: "total_credit", Title: "Total", Width: 12},
			Value:  func(i model.Invoice) string { return formatMoney(i.TotalCredit) },
		},
		{
			Column: report.Column{Key: "due_amount", Title: "Due", Width: 12},
			Value:  func(i model.Invoice) string { return formatMoney(i.DueAmount) },
		},
		{
			Column: report.Column{Key: "status", Title: "Status", Width: 10},
			Value:  func(i model.Invoice) string { return string(i.Status) },
		},
		{
			Column: report.Column{Key: "branch_name", Title: "Branch", Width: 16},
			Value:  func(i model.Invoice) string { return i.BranchName },
		},
	}
}

func invoiceFields() []report.Field {
	fields := dateRangeFields()
	return append(fields,
		report.Field{
			Kind:  report.FieldSelect,
			Name:  "invoiceType",
			Label: "Type",
			Value: "all",
			Options: []report.Option{
				{Value: "all", Label: "All"},
				{Value: "payment", Label: "Payments"},
				{Value: "refund", Label: "Refunds"},
				{Value: "recharge", Label: "Top-ups"},
				{Value: "all_recharge", Label: "All top-up activity"},
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
			Name:        "patient",
			Label:       "Patient",
			Placeholder: "name or code",
		},
	)
}

// Invoices builds the invoice report schema: listing, server export and
// the refund / offset / change-type row actions.
func Invoices(deps Deps) report.Schema {
	cols := invoiceColumns()
	rows := &cache[model.Invoice]{}

	return report.Schema{
		Name:        "invoices",
		Title:       "Invoices",
		EmptyText:   "No invoices match the current filters",
		ExportTitle: "Invoice report",
		Columns:     report.Columns(cols),
		Defaults:    invoiceFields,
		Fetch: func(ctx context.Context, params url.Values) (report.PageData, error) {
			page, err := deps.API.ListInvoices(ctx, params)
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
			return deps.API.Download(ctx, api.PathInvoices, params, deps.Downloads)
		},
		Actions: []report.Action{
			refundAction(deps, rows),
			offsetAction(deps, rows),
			changeTypeAction(deps, rows),
		},
	}
}

func refundAction(deps Deps, rows *cache[model.Invoice]) report.Action {
	return report.Action{
		Name:  "refund",
		Title: "Refund invoice",
		Key:   "r",
		Build: func(row int) (*report.Form, error) {
			inv, ok := rows.at(row)
			if !ok {
				return nil, common.NewUserError("select an invoice first", common.ErrValidation)
			}
			if !inv.Refundable() {
				return nil, common.NewUserError(
					fmt.Sprintf("invoice %s has nothing left to refund", inv.Code),
					common.ErrValidation,
				)
			}

			max := inv.RefundableAmount()
			return &report.Form{
				Title: fmt.Sprintf("Refund %s (%s)", inv.Code, formatMoney(max)),
				Fields: []report.FormField{
					{
						Name:  "refund_type",
						Label: "Refund type",
						Kind:  report.FormSelect,
						Value: string(api.RefundFull),
						Options: []report.Option{
							{Value: string(api.RefundFull), Label: "Full"},
							{Value: string(api.RefundPartial), Label: "Partial"},
						},
					},
					{
						Name:        "amount",
						Label:       "Amount",
						Kind:        report.FormAmount,
						Placeholder: max.StringFixed(0),
						Value:       max.StringFixed(0),
						Max:         &max,
						RequiredIf: func(values map[string]string) bool {
							return values["refund_type"] == string(api.RefundPartial)
						},
					},
					{Name: "reason", Label: "Reason", Kind: report.FormText, Required: true},
				},
				Submit: func(ctx context.Context, values map[string]string) (string, error) {
					amount := max
					if values["refund_type"] == string(api.RefundPartial) {
						parsed, err := decimal.NewFromString(values["amount"])
						if err != nil {
							return "", common.NewUserError("Amount must be a number", err)
						}
						amount = parsed
					}
					return deps.API.Refund(ctx, api.RefundInput{
						InvoiceID: inv.ID,
						Kind:      api.RefundKind(values["refund_type"]),
						Amount:    amount,
						Reason:    values["reason"],
					})
				},
				Notify: func(ctx context.Context, values map[string]string) error {
					return deps.API.CreateNotification(ctx, model.NewNotification(
						model.NotifyRefund,
						deps.Session.UserID,
						inv.ID,
						"Invoice refunded",
						fmt.Sprintf("%s refunded invoice %s: %s", deps.Session.Username, inv.Code, values["reason"]),
					))
				},
			}, nil
		},
	}
}

func offsetAction(deps Deps, rows *cache[model.Invoice]) report.Action {
	return report.Action{
		Name:  "offset",
		Title: "Offset due amount",
		Key:   "o",
		Build: func(row int) (*report.Form, error) {
			inv, ok := rows.at(row)
			if !ok {
				return nil, common.NewUserError("select an invoice first", common.ErrValidation)
			}
			if !inv.Offsetable() {
				return nil, common.NewUserError(
					fmt.Sprintf("invoice %s has no due amount to offset", inv.Code),
					common.ErrValidation,
				)
			}

			max := inv.DueAmount
			return &report.Form{
				Title: fmt.Sprintf("Offset %s (due %s)", inv.Code, formatMoney(max)),
				Fields: []report.FormField{
					{
						Name:        "amount",
						Label:       "Amount",
						Kind:        report.FormAmount,
						Required:    true,
						Value:       max.StringFixed(0),
						Placeholder: max.StringFixed(0),
						Max:         &max,
					},
					{Name: "note", Label: "Note", Kind: report.FormText},
				},
				Submit: func(ctx context.Context, values map[string]string) (string, error) {
					amount, err := decimal.NewFromString(values["amount"])
					if err != nil {
						return "", common.NewUserError("Amount must be a number", err)
					}
					return deps.API.Offset(ctx, api.OffsetInput{
						InvoiceID: inv.ID,
						Amount:    amount,
						Note:      values["note"],
					})
				},
				Notify: func(ctx context.Context, _ map[string]string) error {
					return deps.API.CreateNotification(ctx, model.NewNotification(
						model.NotifyOffset,
						deps.Session.UserID,
						inv.ID,
						"Invoice offset",
						fmt.Sprintf("%s offset invoice %s", deps.Session.Username, inv.Code),
					))
				},
			}, nil
		},
	}
}

func changeTypeAction(deps Deps, rows *cache[model.Invoice]) report.Action {
	return report.Action{
		Name:  "change-type",
		Title: "Change payment source",
		Key:   "t",
		Build: func(row int) (*report.Form, error) {
			inv, ok := rows.at(row)
			if !ok {
				return nil, common.NewUserError("select an invoice first", common.ErrValidation)
			}

			return &report.Form{
				Title: fmt.Sprintf("Change source of %s", inv.Code),
				Fields: []report.FormField{
					{
						Name:  "payment_source",
						Label: "Payment source",
						Kind:  report.FormSelect,
						Value: string(inv.Source),
						Options: []report.Option{
							{Value: string(model.SourceCash), Label: "Cash"},
							{Value: string(model.SourceTransfer), Label: "Transfer"},
							{Value: string(model.SourceCard), Label: "Card"},
						},
					},
					{
						Name:        "reference",
						Label:       "Reference code",
						Kind:        report.FormText,
						Placeholder: "bank reference",
						// A transfer without its bank reference cannot be
						// reconciled.
						RequiredIf: func(values map[string]string) bool {
							return values["payment_source"] == string(model.SourceTransfer)
						},
					},
				},
				Validate: func(values map[string]string) error {
					if values["payment_source"] == string(inv.Source) {
						return common.NewUserError("pick a different payment source", common.ErrValidation)
					}
					return nil
				},
				Submit: func(ctx context.Context, values map[string]string) (string, error) {
					return deps.API.ChangeInvoiceType(ctx, api.ChangeTypeInput{
						InvoiceID: inv.ID,
						Source:    model.PaymentSource(values["payment_source"]),
						Reference: values["reference"],
					})
				},
				Notify: func(ctx context.Context, values map[string]string) error {
					return deps.API.CreateNotification(ctx, model.NewNotification(
						model.NotifyTypeChange,
						deps.Session.UserID,
						inv.ID,
						"Invoice source changed",
						fmt.Sprintf("%s moved invoice %s to %s", deps.Session.Username, inv.Code, values["payment_source"]),
					))
				},
			}, nil
		},
	}
}
