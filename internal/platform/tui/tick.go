// Package tui provides the Bubble Tea frontend for the arcade: the terminal
// game loop, key handling, the scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate caps the simulation rate; faster rates only burn CPU.
const maxTickRate = 240

// TickMsg asks the model to run one simulation step.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a period. Rates outside
// 1..maxTickRate fall back to 60 or are capped.
func tickInterval(rate int) time.Duration {
	switch {
	case rate <= 0:
		rate = 60
	case rate > maxTickRate:
		rate = maxTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
