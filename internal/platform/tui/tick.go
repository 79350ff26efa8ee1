// Package tui provides the Bubble Tea host for the snake engine.
// It owns the tick scheduler, input mapping and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Seq ties the message to the schedule that produced it, so ticks issued
// before a pause or restart can be dropped.
type TickMsg struct {
	Seq  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that fires one tick after interval.
func tickCmd(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
