package api

import (
	"context"
	"net/url"

	"github.com/bekendz87/droh-admin/internal/model"
)

// Report listing endpoints.
const (
	PathInvoices     = "/api/reports/invoices"
	PathCashier      = "/api/reports/cashier"
	PathExaminations = "/api/reports/examinations"
	PathDebits       = "/api/reports/debits"
)

// list fetches one page of a report listing and decodes it into the typed
// page shape. Methods cannot be generic, so the domain wrappers below
// delegate here.
func list[T any](ctx context.Context, c *Client, path string, params url.Values) (model.Page[T], error) {
	var page model.Page[T]
	if err := c.Get(ctx, path, params, &page); err != nil {
		return model.Page[T]{}, err
	}
	return page, nil
}

// ListInvoices fetches a page of the invoice report.
func (c *Client) ListInvoices(ctx context.Context, params url.Values) (model.Page[model.Invoice], error) {
	return list[model.Invoice](ctx, c, PathInvoices, params)
}

// ListCashierRecords fetches a page of the cashier / top-up report.
func (c *Client) ListCashierRecords(ctx context.Context, params url.Values) (model.Page[model.CashierRecord], error) {
	return list[model.CashierRecord](ctx, c, PathCashier, params)
}

// ListExaminations fetches a page of the examination report.
func (c *Client) ListExaminations(ctx context.Context, params url.Values) (model.Page[model.Examination], error) {
	return list[model.Examination](ctx, c, PathExaminations, params)
}

// ListDebits fetches a page of the debit / cash-out report.
func (c *Client) ListDebits(ctx context.Context, params url.Values) (model.Page[model.Debit], error) {
	return list[model.Debit](ctx, c, PathDebits, params)
}
