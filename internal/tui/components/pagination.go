package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"

	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// Pagination is the page footer. It is fully controlled: the workspace
// sets the page from the report controller and the component only
// renders, so the footer can never disagree with the loaded data.
type Pagination struct {
	theme themes.Theme
	pager paginator.Model
	page  int
	total int
}

// NewPagination creates an empty pagination footer.
func NewPagination(theme themes.Theme) Pagination {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = theme.Bold.Foreground(theme.Primary).Render("●")
	p.InactiveDot = theme.Faint.Render("○")
	return Pagination{theme: theme, pager: p, page: 1}
}

// Set updates the current page and page count, both 1-based.
func (p *Pagination) Set(page, total int) {
	p.page = page
	p.total = total
	if total > 0 {
		p.pager.SetTotalPages(total)
		p.pager.Page = page - 1
	}
}

// Page returns the current page, 1-based.
func (p *Pagination) Page() int { return p.page }

// HasPrev reports whether a previous page exists.
func (p *Pagination) HasPrev() bool { return p.page > 1 }

// HasNext reports whether a next page exists.
func (p *Pagination) HasNext() bool { return p.total > 0 && p.page < p.total }

// View renders the footer line.
func (p *Pagination) View() string {
	if p.total <= 0 {
		return ""
	}

	prev := p.theme.Faint.Render("‹")
	if p.HasPrev() {
		prev = p.theme.Normal.Render("‹")
	}
	next := p.theme.Faint.Render("›")
	if p.HasNext() {
		next = p.theme.Normal.Render("›")
	}

	dots := ""
	if p.total <= 12 {
		dots = " " + p.pager.View()
	}

	label := p.theme.Subtitle.Render(fmt.Sprintf(" page %d of %d ", p.page, p.total))
	return prev + label + next + dots
}
