// Package model defines the typed records exchanged with the DROH backend.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType identifies the financial nature of an invoice.
type InvoiceType string

// Invoice types.
const (
	InvoiceTypePayment  InvoiceType = "payment"
	InvoiceTypeRefund   InvoiceType = "refund"
	InvoiceTypeRecharge InvoiceType = "recharge"
)

// InvoiceStatus is the settlement state of an invoice.
type InvoiceStatus string

// Invoice statuses.
const (
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusPartial  InvoiceStatus = "partial"
	InvoiceStatusRefunded InvoiceStatus = "refunded"
	InvoiceStatusOffset   InvoiceStatus = "offset"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
)

// PaymentSource is the channel the money moved through.
type PaymentSource string

// Payment sources.
const (
	SourceCash     PaymentSource = "cash"
	SourceTransfer PaymentSource = "transfer"
	SourceCard     PaymentSource = "card"
)

// Invoice is a financial record of type payment, refund or top-up.
type Invoice struct {
	CreatedAt     time.Time       `json:"created_at"`
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	PatientID     string          `json:"patient_id"`
	PatientName   string          `json:"patient_name"`
	BranchID      string          `json:"branch_id"`
	BranchName    string          `json:"branch_name"`
	Type          InvoiceType     `json:"invoice_type"`
	Status        InvoiceStatus   `json:"status"`
	Source        PaymentSource   `json:"payment_source"`
	SourceRef     string          `json:"source_ref"`
	CreatedBy     string          `json:"created_by"`
	TotalCredit   decimal.Decimal `json:"total_credit"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueAmount     decimal.Decimal `json:"due_amount"`
	RefundedTotal decimal.Decimal `json:"refunded_total"`
}

// Refundable reports whether the invoice still carries value to refund.
func (i Invoice) Refundable() bool {
	if i.Status == InvoiceStatusRefunded || i.Status == InvoiceStatusCanceled {
		return false
	}
	return i.TotalCredit.Sub(i.RefundedTotal).IsPositive()
}

// RefundableAmount is the maximum amount a refund may claim.
func (i Invoice) RefundableAmount() decimal.Decimal {
	remaining := i.TotalCredit.Sub(i.RefundedTotal)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Offsetable reports whether the invoice has a due amount an offset can settle.
func (i Invoice) Offsetable() bool {
	return i.Status == InvoiceStatusPartial && i.DueAmount.IsPositive()
}
