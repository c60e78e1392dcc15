package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

func TestPaginationBounds(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		total   int
		hasPrev bool
		hasNext bool
	}{
		{name: "first of many", page: 1, total: 5, hasPrev: false, hasNext: true},
		{name: "middle", page: 3, total: 5, hasPrev: true, hasNext: true},
		{name: "last", page: 5, total: 5, hasPrev: true, hasNext: false},
		{name: "single page", page: 1, total: 1, hasPrev: false, hasNext: false},
		{name: "no data", page: 1, total: 0, hasPrev: false, hasNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(themes.Default)
			p.Set(tt.page, tt.total)
			assert.Equal(t, tt.hasPrev, p.HasPrev())
			assert.Equal(t, tt.hasNext, p.HasNext())
		})
	}
}

func TestPaginationView(t *testing.T) {
	p := NewPagination(themes.Default)

	p.Set(1, 0)
	assert.Empty(t, p.View())

	p.Set(2, 5)
	view := p.View()
	assert.Contains(t, view, "page 2 of 5")
}
