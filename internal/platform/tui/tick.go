// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, held-key input, run storage and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval converts a tick rate to a frame duration, clamped to 1..1000 fps.
func tickInterval(tickRate int) time.Duration {
	tickRate = core.Clamp(tickRate, 1, 1000)
	return time.Second / time.Duration(tickRate)
}
