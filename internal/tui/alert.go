package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// AlertKind is the severity of a transient alert.
type AlertKind int

// Alert kinds.
const (
	AlertSuccess AlertKind = iota
	AlertError
	AlertWarning
	AlertInfo
)

// Alert is one transient status message.
type Alert struct {
	Text string
	Kind AlertKind
}

// defaultAlertTTL is how long an alert stays up before auto-dismissing.
const defaultAlertTTL = 5 * time.Second

// Notifier holds at most one alert. A new alert replaces the current one
// immediately; each Show bumps a generation counter so the dismiss timer
// of a replaced alert can never take down its successor.
type Notifier struct {
	alert *Alert
	ttl   time.Duration
	gen   uint64
}

// NewNotifier creates a notifier with the given time-to-live, or the
// default when zero.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = defaultAlertTTL
	}
	return &Notifier{ttl: ttl}
}

// Show replaces the current alert and returns the auto-dismiss tick.
func (n *Notifier) Show(kind AlertKind, text string) tea.Cmd {
	n.gen++
	n.alert = &Alert{Kind: kind, Text: text}

	gen := n.gen
	return tea.Tick(n.ttl, func(time.Time) tea.Msg {
		return alertExpiredMsg{gen: gen}
	})
}

// Expire handles a dismiss tick, clearing the alert only when the tick
// belongs to it.
func (n *Notifier) Expire(msg alertExpiredMsg) {
	if msg.gen == n.gen {
		n.alert = nil
	}
}

// Hide dismisses the current alert immediately.
func (n *Notifier) Hide() {
	n.alert = nil
}

// Current returns the visible alert, or nil.
func (n *Notifier) Current() *Alert {
	return n.alert
}

// View renders the alert line, empty when nothing is up.
func (n *Notifier) View(theme themes.Theme, width int) string {
	if n.alert == nil {
		return ""
	}

	var style lipgloss.Style
	var icon string
	switch n.alert.Kind {
	case AlertSuccess:
		style, icon = theme.StatusSuccess, "✓"
	case AlertError:
		style, icon = theme.StatusError, "✗"
	case AlertWarning:
		style, icon = theme.StatusWarning, "⚠"
	default:
		style, icon = theme.StatusInfo, "ℹ"
	}

	line := icon + " " + n.alert.Text
	if width > 0 {
		return style.MaxWidth(width).Render(line)
	}
	return style.Render(line)
}
