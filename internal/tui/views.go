package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/report"
)

// View renders the workspace.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == StateHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.filter.View(m.ctrl.Fields(), m.state == StateFilter, m.width))
	b.WriteString("\n")

	if summary := m.summaryView(); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n")
	}

	if m.state == StateModal && m.modal != nil {
		b.WriteString(m.modal.View(m.width))
	} else {
		if m.ctrl.State() == report.StateErrored {
			b.WriteString(m.theme.ErrorBanner.Render(m.ctrl.Err()))
			b.WriteString("\n")
		}
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) headerView() string {
	title := m.theme.Title.Render(m.ctrl.Schema().Title)

	status := ""
	if m.ctrl.Loading() {
		status = "  " + m.spinner.View() + m.theme.StatusPending.Render("loading...")
	}

	return title + status
}

// summaryView renders the aggregate figures above the table.
func (m Model) summaryView() string {
	summary := m.ctrl.Data().Summary
	if len(summary) == 0 {
		return ""
	}

	parts := make([]string, 0, len(summary))
	for _, s := range summary {
		parts = append(parts, m.theme.Subtitle.Render(s.Label+": ")+m.theme.Bold.Render(s.Value))
	}
	return strings.Join(parts, m.theme.Faint.Render("   "))
}

func (m Model) footerView() string {
	left := m.pager.View()

	hint := ""
	switch m.state {
	case StateFilter:
		hint = "↑/↓ field · enter edit · space toggle · Ctrl+S apply · esc back"
	case StateModal:
		// The modal carries its own hint line.
	default:
		hint = "f filters · e/p export · ? help · q quit"
	}

	lines := []string{}
	if alert := m.notifier.View(m.theme, m.width); alert != "" {
		lines = append(lines, alert)
	}

	footer := left
	if hint != "" {
		footer += "   " + m.theme.Faint.Render(hint)
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n")
}

func (m Model) helpView() string {
	type row struct {
		keys string
		desc string
	}

	rows := []row{
		{"↑/k  ↓/j", "move between rows"},
		{"←/h  →/l", "previous / next page"},
		{"[  ]", "scroll columns"},
		{"f / Tab", "edit filters"},
		{"Ctrl+S", "apply filters"},
		{"Ctrl+X", "reset filters to defaults"},
		{"Ctrl+R", "refresh the current page"},
		{"e / p", "server export to Excel / PDF"},
		{"E / P", "save the visible page locally"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	for _, action := range m.ctrl.Schema().Actions {
		rows = append(rows, row{action.Key, action.Title})
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.ctrl.Schema().Title + " — keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(m.theme.Bold.Render(padRight(r.keys, 10)))
		b.WriteString("  ")
		b.WriteString(m.theme.Normal.Render(r.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render("press any key to go back"))

	box := m.theme.RoundedBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	for len([]rune(s)) < width {
		s += " "
	}
	return s
}
