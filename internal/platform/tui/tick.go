// Package tui provides the Bubble Tea front end for the catch game.
// It owns the tick scheduler, maps keys to intents, and renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Gen identifies the arming that
// produced it; ticks from an older generation are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd arms a single tick at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
