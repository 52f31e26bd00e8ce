package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
)

func testHabits() []models.Habit {
	return []models.Habit{
		{
			ID:        "a1",
			Name:      "Read",
			Emoji:     "📚",
			Color:     "#3b82f6",
			CreatedAt: "2024-01-01",
			Completions: map[string]bool{
				"2024-01-01": true,
				"2024-01-02": false,
			},
		},
		{
			ID:          "b2",
			Name:        "Gym",
			Emoji:       "💪",
			Color:       "#f00",
			CreatedAt:   "2024-01-02",
			Completions: map[string]bool{},
		},
	}
}

// Both backends must satisfy the same round-trip and fallback contract.
func eachStore(t *testing.T, fn func(t *testing.T, newStore func(path string) storage.Provider, ext string)) {
	t.Run("json", func(t *testing.T) {
		fn(t, func(path string) storage.Provider { return storage.NewJSONStore(path) }, ".json")
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, func(path string) storage.Provider { return storage.NewSQLiteStore(path) }, ".db")
	})
}

func TestRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, newStore func(string) storage.Provider, ext string) {
		path := filepath.Join(t.TempDir(), "habitgrid"+ext)

		store := newStore(path)
		require.NoError(t, store.Init())

		want := testHabits()
		require.NoError(t, store.Set(storage.KeyHabits, want))

		var got []models.Habit
		found, err := store.Get(storage.KeyHabits, &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
		require.NoError(t, store.Close())

		// Values survive a reopen
		reopened := newStore(path)
		require.NoError(t, reopened.Load())
		defer reopened.Close()

		got = nil
		found, err = reopened.Get(storage.KeyHabits, &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	})
}

func TestGetUnknownKey(t *testing.T) {
	eachStore(t, func(t *testing.T, newStore func(string) storage.Provider, ext string) {
		store := newStore(filepath.Join(t.TempDir(), "habitgrid"+ext))
		require.NoError(t, store.Init())
		defer store.Close()

		theme := "light"
		found, err := store.Get(storage.KeyTheme, &theme)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, "light", theme, "caller default should be untouched")
	})
}

func TestGetMismatchedShapeFallsBack(t *testing.T) {
	eachStore(t, func(t *testing.T, newStore func(string) storage.Provider, ext string) {
		store := newStore(filepath.Join(t.TempDir(), "habitgrid"+ext))
		require.NoError(t, store.Init())
		defer store.Close()

		// A number where the caller expects a habit array
		require.NoError(t, store.Set(storage.KeyHabits, 42))

		var habits []models.Habit
		found, err := store.Get(storage.KeyHabits, &habits)
		require.NoError(t, err, "a malformed value must not surface as a failure")
		assert.False(t, found)
		assert.Nil(t, habits)
	})
}

func TestScopedKeys(t *testing.T) {
	eachStore(t, func(t *testing.T, newStore func(string) storage.Provider, ext string) {
		store := newStore(filepath.Join(t.TempDir(), "habitgrid"+ext))
		require.NoError(t, store.Init())
		defer store.Close()

		require.NoError(t, store.Set(storage.KeyTheme, "dark"))
		require.NoError(t, store.Set(storage.KeyAuthenticated, true))

		var theme string
		found, err := store.Get(storage.KeyTheme, &theme)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "dark", theme)

		var authed bool
		found, err = store.Get(storage.KeyAuthenticated, &authed)
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, authed)
	})
}

func TestLoadNotInitialized(t *testing.T) {
	eachStore(t, func(t *testing.T, newStore func(string) storage.Provider, ext string) {
		store := newStore(filepath.Join(t.TempDir(), "habitgrid"+ext))
		err := store.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not initialized")
	})
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")

	store := storage.NewJSONStore(path)
	require.NoError(t, store.Init())

	err := storage.NewJSONStore(path).Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestJSONStoreUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json at all"), 0600))

	store := storage.NewJSONStore(path)
	require.NoError(t, store.Load(), "a corrupt store file must not crash the caller")

	var habits []models.Habit
	found, err := store.Get(storage.KeyHabits, &habits)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteStoreCorruptValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.db")

	store := storage.NewSQLiteStore(path)
	require.NoError(t, store.Init())
	defer store.Close()

	require.NoError(t, store.Set(storage.KeyHabits, testHabits()))

	_, err := store.DB().Exec("UPDATE kv SET value = '{truncated' WHERE key = ?", storage.KeyHabits)
	require.NoError(t, err)

	var habits []models.Habit
	found, err := store.Get(storage.KeyHabits, &habits)
	require.NoError(t, err)
	assert.False(t, found)
}
