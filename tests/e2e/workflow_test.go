package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/habits"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
)

// TestFullWorkflow walks the whole lifecycle against a real store file:
// init, add habits, toggle completions, read stats, delete, and verify
// that every step survives a process restart.
func TestFullWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")

	// init
	store := storage.NewJSONStore(path)
	require.NoError(t, store.Init())

	repo := habits.NewRepository(store)
	require.NoError(t, repo.Load())

	// add
	read, err := repo.AddHabit("Read", "📚", "#3b82f6")
	require.NoError(t, err)
	gym, err := repo.AddHabit("Gym", "💪", "#ef4444")
	require.NoError(t, err)

	// toggle a few days
	today := dateutil.Today()
	yesterday, err := dateutil.AddDays(today, -1)
	require.NoError(t, err)

	require.NoError(t, repo.ToggleCompletion(read.ID, today))
	require.NoError(t, repo.ToggleCompletion(read.ID, yesterday))
	require.NoError(t, repo.ToggleCompletion(gym.ID, yesterday))
	require.NoError(t, store.Close())

	// restart: a fresh store and repository see everything
	store = storage.NewJSONStore(path)
	require.NoError(t, store.Load())
	repo = habits.NewRepository(store)
	require.NoError(t, repo.Load())

	all := repo.Habits()
	require.Len(t, all, 2)
	assert.Equal(t, read.ID, all[0].ID)
	assert.Equal(t, gym.ID, all[1].ID)

	// stats
	s, ok := repo.StatsFor(read.ID)
	require.True(t, ok)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 2, s.TotalCompletions)
	assert.Equal(t, 100.0, s.CompletionRate)

	s, ok = repo.StatsFor(gym.ID)
	require.True(t, ok)
	assert.Equal(t, 1, s.CurrentStreak, "yesterday's completion keeps the streak alive")
	assert.Equal(t, 1, s.TotalCompletions)

	// delete both, then confirm an empty collection was written out
	require.NoError(t, repo.DeleteHabit(read.ID))
	require.NoError(t, repo.DeleteHabit(gym.ID))
	assert.Empty(t, repo.Habits())
	require.NoError(t, store.Close())

	store = storage.NewJSONStore(path)
	require.NoError(t, store.Load())
	var remaining []models.Habit
	found, err := store.Get(storage.KeyHabits, &remaining)
	require.NoError(t, err)
	assert.True(t, found, "the empty collection is persisted, not removed")
	assert.Empty(t, remaining)
}

// TestWorkflowSQLite runs the abbreviated lifecycle against the sqlite
// backend to keep both providers honest.
func TestWorkflowSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.db")

	store := storage.NewSQLiteStore(path)
	require.NoError(t, store.Init())

	repo := habits.NewRepository(store)
	require.NoError(t, repo.Load())

	habit, err := repo.AddHabit("Meditate", "🧘", "#8b5cf6")
	require.NoError(t, err)
	require.NoError(t, repo.ToggleCompletion(habit.ID, dateutil.Today()))
	require.NoError(t, store.Close())

	store = storage.NewSQLiteStore(path)
	require.NoError(t, store.Load())
	repo = habits.NewRepository(store)
	require.NoError(t, repo.Load())
	defer store.Close()

	got, ok := repo.Get(habit.ID)
	require.True(t, ok)
	assert.True(t, got.Completions[dateutil.Today()])
}

// TestStoreFileShape pins the on-disk layout of the json backend so a
// future refactor cannot silently change it.
func TestStoreFileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")

	store := storage.NewJSONStore(path)
	require.NoError(t, store.Init())

	repo := habits.NewRepository(store)
	require.NoError(t, repo.Load())
	_, err := repo.AddHabit("Read", "📚", "#3b82f6")
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.KeyTheme, "dark"))
	require.NoError(t, store.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Version int                        `json:"version"`
		Values  map[string]json.RawMessage `json:"values"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Contains(t, doc.Values, storage.KeyHabits)
	assert.Contains(t, doc.Values, storage.KeyTheme)
}
