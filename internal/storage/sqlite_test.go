package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its directories")
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(RunRecord{GameID: "arkanoid", Score: 70, Outcome: OutcomeGameOver})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 70, high)
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveRun(RunRecord{GameID: "arkanoid", Score: score, Outcome: OutcomeGameOver})
		require.NoError(t, err)
	}
	_, err := store.SaveRun(RunRecord{GameID: "arkanoid_hard", Score: 500, Outcome: OutcomeVictory})
	require.NoError(t, err)

	runs, err := store.TopRuns("arkanoid", 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 200, runs[0].Score)
	assert.Equal(t, 100, runs[1].Score)
	assert.Equal(t, 50, runs[2].Score)
	for _, r := range runs {
		assert.NotEqual(t, uuid.Nil, r.RunID)
		assert.Equal(t, "arkanoid", r.GameID)
	}

	limited, err := store.TopRuns("arkanoid", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	hard, err := store.TopRuns("arkanoid_hard", 0)
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, OutcomeVictory, hard[0].Outcome)
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	want := RunRecord{
		RunID:      uuid.New(),
		GameID:     "arkanoid",
		Player:     "alice",
		Score:      340,
		Outcome:    OutcomeVictory,
		LivesLeft:  2,
		BricksLeft: 0,
		Ticks:      5400,
	}
	id, err := store.SaveRun(want)
	require.NoError(t, err)
	assert.Equal(t, want.RunID, id)

	got, err := store.RunByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Player, got.Player)
	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.Outcome, got.Outcome)
	assert.Equal(t, want.LivesLeft, got.LivesLeft)
	assert.Equal(t, want.Ticks, got.Ticks)

	missing, err := store.RunByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Run IDs are unique
	_, err = store.SaveRun(want)
	assert.Error(t, err)
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	runs := []RunRecord{
		{GameID: "arkanoid", Score: 100, Outcome: OutcomeGameOver},
		{GameID: "arkanoid", Score: 300, Outcome: OutcomeVictory},
		{GameID: "arkanoid", Score: 200, Outcome: OutcomeQuit},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	high, err = store.HighScore("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 300, high)

	stats, err := store.GetGameStats("arkanoid")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.RunsCount)
	assert.Equal(t, 1, stats.Victories)
	assert.Equal(t, 300, stats.HighScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunRecord{GameID: "arkanoid", Score: 10, Outcome: OutcomeGameOver})
	require.NoError(t, err)
	_, err = store.SaveRun(RunRecord{GameID: "arkanoid_hard", Score: 20, Outcome: OutcomeGameOver})
	require.NoError(t, err)

	require.NoError(t, store.ClearRuns("arkanoid"))

	runs, err := store.TopRuns("arkanoid", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	other, err := store.TopRuns("arkanoid_hard", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
