// Package tui provides the Bubble Tea integration for snek.
// It handles the terminal UI loop, input mapping, rendering and the
// scoreboard screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
// The game model schedules one tick at a time so each step can use the
// current speed.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
