package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bekendz87/droh-admin/internal/model"
)

// RefundKind selects a full or partial refund.
type RefundKind string

// Refund kinds.
const (
	RefundFull    RefundKind = "full"
	RefundPartial RefundKind = "partial"
)

// RefundInput is the payload for the invoice refund endpoint.
type RefundInput struct {
	InvoiceID string          `json:"invoice_id"`
	Kind      RefundKind      `json:"refund_type"`
	Reason    string          `json:"reason"`
	Amount    decimal.Decimal `json:"amount"`
}

// Refund refunds an invoice and returns the backend's confirmation message.
func (c *Client) Refund(ctx context.Context, in RefundInput) (string, error) {
	return c.Post(ctx, "/api/invoices/refund", in, nil)
}

// OffsetInput is the payload for settling part of an invoice's due amount
// against the branch-held balance.
type OffsetInput struct {
	InvoiceID string          `json:"invoice_id"`
	Note      string          `json:"note"`
	Amount    decimal.Decimal `json:"amount"`
}

// Offset applies a partial settlement to an invoice.
func (c *Client) Offset(ctx context.Context, in OffsetInput) (string, error) {
	return c.Post(ctx, "/api/invoices/offset", in, nil)
}

// ChangeTypeInput is the payload for moving an invoice to another payment
// source. A transfer source requires the bank reference code.
type ChangeTypeInput struct {
	InvoiceID string              `json:"invoice_id"`
	Source    model.PaymentSource `json:"payment_source"`
	Reference string              `json:"reference,omitempty"`
}

// ChangeInvoiceType moves an invoice to a different payment source.
func (c *Client) ChangeInvoiceType(ctx context.Context, in ChangeTypeInput) (string, error) {
	return c.Post(ctx, "/api/invoices/change-type", in, nil)
}

// ReturnDebitInput is the payload for closing out a debit request.
type ReturnDebitInput struct {
	DebitID string `json:"debit_id"`
	Note    string `json:"note,omitempty"`
}

// MarkDebitReturned marks a debit request as returned.
func (c *Client) MarkDebitReturned(ctx context.Context, in ReturnDebitInput) (string, error) {
	return c.Post(ctx, "/api/debits/return", in, nil)
}

// CreateNotification posts a back-office notification. Failures here are
// advisory; the mutation that triggered the notification already succeeded.
func (c *Client) CreateNotification(ctx context.Context, n model.Notification) error {
	_, err := c.Post(ctx, "/api/notifications", n, nil)
	return err
}
