package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// GameKeyMap binds keys to game actions.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " ", "esc"),
			key.WithHelp("p/space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot is handled by the model and maps to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Terminals report key presses and auto-repeats but never releases.
// An action stays held for a short window after its last press, long
// enough to bridge the gaps between auto-repeats.
const defaultHoldWindow = 150 * time.Millisecond

// HeldInput turns discrete key presses into per-tick "held" actions.
type HeldInput struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHeldInput creates a tracker for the given tick rate.
// A non-positive window uses the default.
func NewHeldInput(tickRate int, window time.Duration) *HeldInput {
	if window <= 0 {
		window = defaultHoldWindow
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	ticks := int(window * time.Duration(tickRate) / time.Second)
	return &HeldInput{
		holdTicks: core.Max(ticks, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press for an action.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.holdTicks
}

// Frame returns the actions held during the current tick.
func (h *HeldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
	return frame
}

// Advance ages every held action by one tick.
func (h *HeldInput) Advance() {
	for a := range h.remaining {
		h.remaining[a]--
		if h.remaining[a] <= 0 {
			delete(h.remaining, a)
		}
	}
}

// Release drops every held action.
func (h *HeldInput) Release() {
	clear(h.remaining)
}
