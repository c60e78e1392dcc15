package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the workspace and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Schema.Fetch == nil {
		return fmt.Errorf("report schema has no data source")
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run report workspace: %w", err)
	}
	return nil
}
