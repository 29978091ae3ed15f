package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys.Action(tc.msg))
		})
	}
}

func TestHeldInputWindow(t *testing.T) {
	// 50ms at 60 ticks per second is 3 ticks
	h := NewHeldInput(60, 50*time.Millisecond)
	h.Press(core.ActionLeft)

	for tick := range 3 {
		frame := h.Frame()
		assert.True(t, frame.Has(core.ActionLeft), "tick %d", tick)
		h.Advance()
	}
	assert.False(t, h.Frame().Has(core.ActionLeft))
}

func TestHeldInputRepeatExtends(t *testing.T) {
	h := NewHeldInput(60, 50*time.Millisecond)
	h.Press(core.ActionRight)
	h.Advance()
	h.Advance()

	// Key repeat arrives before the window closes
	h.Press(core.ActionRight)
	h.Advance()
	h.Advance()
	assert.True(t, h.Frame().Has(core.ActionRight))
}

func TestHeldInputOppositeDirections(t *testing.T) {
	h := NewHeldInput(60, 0)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := h.Frame()
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput(60, 0)
	h.Press(core.ActionLeft)
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	h.Release()
	frame := h.Frame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionPause, core.ActionNone} {
		assert.False(t, frame.Has(a), a.String())
	}
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(60))
	assert.Equal(t, time.Second, tickInterval(0))
	assert.Equal(t, time.Millisecond, tickInterval(5000))
}
