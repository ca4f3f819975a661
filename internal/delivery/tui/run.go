package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the session in the alternate screen until the user quits, the
// context is cancelled, or the terminal fails. bubbletea restores the
// terminal mode on every exit path; terminal failures are returned, never
// retried.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
