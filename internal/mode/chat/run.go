// ABOUTME: Entry point for the chat TUI
// ABOUTME: Creates the tea.Program and blocks until exit

package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the chat TUI. Blocks until the user exits.
func Run(deps AppDeps) error {
	p := tea.NewProgram(NewAppModel(deps))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
