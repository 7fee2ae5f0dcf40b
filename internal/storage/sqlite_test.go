package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "flappy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "test.db")
	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSQLiteHighscoreDefaultsToZero(t *testing.T) {
	store := openTestDB(t)
	hs, err := store.LoadHighscore()
	require.NoError(t, err)
	assert.Zero(t, hs)
}

func TestSQLiteHighscoreNeverLowers(t *testing.T) {
	store := openTestDB(t)

	for _, tc := range []struct {
		save, want int
	}{
		{5, 5},
		{12, 12},
		{3, 12},
		{12, 12},
		{13, 13},
	} {
		require.NoError(t, store.SaveHighscore(tc.save))
		hs, err := store.LoadHighscore()
		require.NoError(t, err)
		assert.Equal(t, tc.want, hs, "after saving %d", tc.save)
	}
}

func TestSQLiteHighscoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flappy.db")

	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveHighscore(42))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	hs, err := store.LoadHighscore()
	require.NoError(t, err)
	assert.Equal(t, 42, hs)
}

func TestSQLiteRuns(t *testing.T) {
	store := openTestDB(t)

	for _, score := range []int{4, 0, 17, 9, 17} {
		require.NoError(t, store.RecordRun(score))
	}

	top, err := store.TopRuns(3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 17, top[0].Score)
	assert.Equal(t, 17, top[1].Score)
	assert.Less(t, top[0].ID, top[1].ID, "ties keep insertion order")
	assert.Equal(t, 9, top[2].Score)

	all, err := store.TopRuns(0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "non-positive limit falls back to 10")

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Runs)
	assert.Equal(t, 17, stats.Best)
	assert.InDelta(t, 9.4, stats.AvgScore, 1e-9)
}

func TestSQLiteEmptyStats(t *testing.T) {
	store := openTestDB(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.True(t, stats.LastPlayed.IsZero())
}

func TestSQLiteTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenSQLite("~/data/flappy.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, "data", "flappy.db"))
	assert.NoError(t, err)
}
