// Package tui implements the interactive ask loop as a Bubble Tea
// program: one prompt, a scrollable transcript, one question in flight
// at a time.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askdb/askdb/agent"
)

// Start launches the interactive ask loop over a ready agent.
func Start(a *agent.Agent) error {
	p := tea.NewProgram(NewAskModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
