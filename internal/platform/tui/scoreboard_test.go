package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "arkanoid", 80, 24)
	assert.Empty(t, m.Runs())
	assert.Contains(t, m.View(), "Score storage is unavailable.")
}

func TestScoreboardSwitchesGames(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{120, 300} {
		_, err := store.SaveRun(storage.RunRecord{GameID: "arkanoid", Score: score, Outcome: storage.OutcomeGameOver})
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, "arkanoid", 80, 24)
	require.Len(t, m.Runs(), 2)
	assert.Equal(t, 300, m.Runs()[0].Score)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Empty(t, m.Runs())
	assert.Contains(t, m.View(), "No runs recorded yet.")

	next, cmd := m.Update(runeKey('q'))
	m = next.(ScoreboardModel)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
