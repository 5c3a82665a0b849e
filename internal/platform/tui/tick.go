// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Gen identifies the loop that
// scheduled it; a model drops ticks from any loop but its current one.
type TickMsg struct {
	Time time.Time
	Gen  int64
}

// loopGen hands out loop generations. It is process-wide so that models
// created one after another in the same program never share a generation.
var loopGen atomic.Int64

func nextGen() int64 {
	return loopGen.Add(1)
}

// tickInterval returns the frame period for rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick of loop gen.
func tickCmd(rate int, gen int64) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
