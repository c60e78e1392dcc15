package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashierKind distinguishes top-ups from withdrawals at the cashier desk.
type CashierKind string

// Cashier record kinds.
const (
	CashierTopUp    CashierKind = "top_up"
	CashierWithdraw CashierKind = "withdraw"
)

// CashierRecord is one cash desk movement on a patient balance.
type CashierRecord struct {
	CreatedAt   time.Time       `json:"created_at"`
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	CashierID   string          `json:"cashier_id"`
	CashierName string          `json:"cashier_name"`
	PatientID   string          `json:"patient_id"`
	PatientName string          `json:"patient_name"`
	BranchName  string          `json:"branch_name"`
	Kind        CashierKind     `json:"kind"`
	Source      PaymentSource   `json:"payment_source"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}
