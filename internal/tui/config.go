package tui

import (
	"time"

	"github.com/bekendz87/droh-admin/internal/report"
	"github.com/bekendz87/droh-admin/internal/tui/themes"
)

// Config holds the workspace configuration.
type Config struct {
	// Schema is the report the workspace hosts.
	Schema report.Schema
	// Theme selects the visual style.
	Theme themes.Theme
	// Downloads is where exports land.
	Downloads string
	// AlertTTL overrides how long alerts stay up. Zero means the default.
	AlertTTL time.Duration
	// Width and Height preset the viewport before the first resize.
	Width  int
	Height int
}
