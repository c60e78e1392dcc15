package model

import "github.com/shopspring/decimal"

// Page is one page of a filtered report listing, with the backend's total
// row count and optional aggregate figures for the whole query.
type Page[T any] struct {
	Report map[string]decimal.Decimal `json:"report,omitempty"`
	List   []T                        `json:"list"`
	Count  int                        `json:"count"`
}

// TotalPages computes the page count for the given page size.
func (p Page[T]) TotalPages(limit int) int {
	return TotalPages(p.Count, limit)
}

// TotalPages is ceil(count/limit). It is 0 when count is 0 and never
// negative; callers clamp the current page with ClampPage.
func TotalPages(count, limit int) int {
	if count <= 0 || limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

// ClampPage forces page into [1, totalPages], or 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
