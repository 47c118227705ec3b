// Package tui provides the Bubble Tea integration for Void Runner.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame. It carries the wall
// clock so the model can measure the real elapsed time between frames.
type TickMsg time.Time

// maxFrameDelta caps the dt handed to the simulation. A stalled
// terminal (suspend, window drag) must not land as one giant step.
const maxFrameDelta = 0.25

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
