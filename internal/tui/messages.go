package tui

import "github.com/bekendz87/droh-admin/internal/report"

// Fetch messages.
type pageMsg struct {
	err  error
	data report.PageData
	gen  uint64
}

// Modal submission outcome. A nil err closes the modal and refreshes
// the page; a non-nil err keeps it open with the message inline.
type modalDoneMsg struct {
	err     error
	message string
}

// Export messages, server-side and local alike.
type exportDoneMsg struct {
	err  error
	path string
}

// Alert auto-dismiss tick. The generation guards against a stale timer
// dismissing a newer alert.
type alertExpiredMsg struct {
	gen uint64
}
