// Package tui provides the Bubble Tea integration for Sky Hopper.
// It handles the terminal UI loop, input latching, and the frame clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame. The timestamp is used to
// derive the frame delta; the simulation clamps it before integrating.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Re-arming happens per frame, so dropping the command is
// how the loop is cancelled.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
