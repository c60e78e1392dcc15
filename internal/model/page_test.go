package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		limit int
		want  int
	}{
		{
			name:  "empty result",
			count: 0,
			limit: 10,
			want:  0,
		},
		{
			name:  "exact multiple",
			count: 30,
			limit: 10,
			want:  3,
		},
		{
			name:  "partial last page",
			count: 31,
			limit: 10,
			want:  4,
		},
		{
			name:  "single row",
			count: 1,
			limit: 10,
			want:  1,
		},
		{
			name:  "limit larger than count",
			count: 5,
			limit: 100,
			want:  1,
		},
		{
			name:  "degenerate limit",
			count: 5,
			limit: 0,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPages(tt.count, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{name: "in range", page: 2, totalPages: 5, want: 2},
		{name: "below range", page: 0, totalPages: 5, want: 1},
		{name: "above range", page: 9, totalPages: 5, want: 5},
		{name: "no pages", page: 3, totalPages: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.totalPages))
		})
	}
}

func TestInvoiceRefundable(t *testing.T) {
	inv := Invoice{
		Status:      InvoiceStatusPaid,
		TotalCredit: dec("500000"),
	}
	assert.True(t, inv.Refundable())
	assert.Equal(t, "500000", inv.RefundableAmount().String())

	inv.RefundedTotal = dec("500000")
	assert.False(t, inv.Refundable())
	assert.Equal(t, "0", inv.RefundableAmount().String())

	inv.Status = InvoiceStatusCanceled
	assert.False(t, inv.Refundable())
}

func TestDebitReturnable(t *testing.T) {
	assert.True(t, Debit{Status: DebitPending}.Returnable())
	assert.True(t, Debit{Status: DebitApproved}.Returnable())
	assert.False(t, Debit{Status: DebitReturned}.Returnable())
	assert.False(t, Debit{Status: DebitRejected}.Returnable())
}
