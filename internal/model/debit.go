package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebitStatus is the lifecycle state of a withdrawal request.
type DebitStatus string

// Debit statuses.
const (
	DebitPending  DebitStatus = "pending"
	DebitApproved DebitStatus = "approved"
	DebitReturned DebitStatus = "returned"
	DebitRejected DebitStatus = "rejected"
)

// Debit is a withdrawal or cash-out request tied to a creator and a payee.
type Debit struct {
	CreatedAt   time.Time       `json:"created_at"`
	ReturnedAt  *time.Time      `json:"returned_at,omitempty"`
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	CreatorID   string          `json:"creator_id"`
	CreatorName string          `json:"creator_name"`
	PayeeName   string          `json:"payee_name"`
	BranchName  string          `json:"branch_name"`
	Status      DebitStatus     `json:"status"`
	Reference   string          `json:"reference"`
	Note        string          `json:"note"`
	Amount      decimal.Decimal `json:"amount"`
}

// Returnable reports whether the debit can still be marked as returned.
func (d Debit) Returnable() bool {
	return d.Status == DebitPending || d.Status == DebitApproved
}
