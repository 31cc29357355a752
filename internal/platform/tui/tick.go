// Package tui provides the Bubble Tea integration for dodge.
// It handles the terminal UI loop, input mapping, and presentation of the
// game's draw intents.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
// Waiting for this tick is the only point where the frame loop yields.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
