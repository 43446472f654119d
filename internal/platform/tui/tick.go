// Package tui provides the Bubble Tea front end for Seeker Ball.
// It runs the host loop, maps keys and mouse events to game input, and renders frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. It carries the wall time so the
// model can derive a variable dt.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, or a clock
// going backwards, yields one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if prev.IsZero() || !now.After(prev) {
		return 1 / float64(tickRate)
	}
	return now.Sub(prev).Seconds()
}
