// Package reports wires the generic report workspace to each DROH report
// route: invoices, cashier, examinations and debits. Every file here is
// the same shape — columns, filter defaults, a fetch adapter and the row
// actions — instantiating the one schema instead of re-implementing the
// page.
package reports

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bekendz87/droh-admin/internal/api"
	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/session"
)

// Deps carries what every report schema needs.
type Deps struct {
	API       *api.Client
	Session   *session.Session
	Downloads string
}

// cache keeps the records behind the currently displayed page so row
// actions can reach the typed record. Fetches run off the UI goroutine,
// hence the lock.
type cache[T any] struct {
	list []T
	mu   sync.RWMutex
}

func (c *cache[T]) set(list []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = list
}

func (c *cache[T]) at(i int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var zero T
	if i < 0 || i >= len(c.list) {
		return zero, false
	}
	return c.list[i], true
}

// formatMoney renders a decimal amount with thousands separators, the
// way the back office displays VND.
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

// summaryStats turns the backend's aggregate block into labeled stats,
// in a stable order.
func summaryStats(aggregates map[string]decimal.Decimal) []report.Stat {
	labels := []struct {
		key   string
		label string
	}{
		{"total", "Total"},
		{"total_paid", "Paid"},
		{"total_due", "Due"},
		{"total_refunded", "Refunded"},
		{"total_top_up", "Top-ups"},
		{"total_withdraw", "Withdrawals"},
		{"total_fee", "Fees"},
		{"total_returned", "Returned"},
	}

	var stats []report.Stat
	for _, l := range labels {
		if v, ok := aggregates[l.key]; ok {
			stats = append(stats, report.Stat{Label: l.label, Value: formatMoney(v)})
		}
	}

	// Unknown aggregate keys still show up, after the known ones.
	for k, v := range aggregates {
		known := false
		for _, l := range labels {
			if l.key == k {
				known = true
				break
			}
		}
		if !known {
			stats = append(stats, report.Stat{Label: k, Value: formatMoney(v)})
		}
	}

	return stats
}

func dateRangeFields() []report.Field {
	return []report.Field{
		{Kind: report.FieldDate, Name: "from", Label: "From", Value: report.Today(), Placeholder: report.DateLayout},
		{Kind: report.FieldDate, Name: "to", Label: "To", Value: report.Today(), Placeholder: report.DateLayout, EndOfDay: true},
	}
}
