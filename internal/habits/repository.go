package habits

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/stats"
	"github.com/julianstephens/habitgrid/internal/storage"
)

// Repository owns the habit collection. It loads the collection from the
// injected store on first use and rewrites the whole collection after every
// mutation. Mutations are atomic with respect to the in-memory slice, but the
// read-modify-write pattern is not safe against a concurrent external writer
// on the same store: last write wins, no merge.
type Repository struct {
	store  storage.Provider
	habits []models.Habit
	loaded bool
}

func NewRepository(store storage.Provider) *Repository {
	return &Repository{
		store: store,
	}
}

// Load opens the store and reads the habit collection. A store value that
// cannot be read falls back to an empty collection.
func (r *Repository) Load() error {
	if r.loaded {
		return nil
	}

	if err := r.store.Load(); err != nil {
		return err
	}

	var habits []models.Habit
	if _, err := r.store.Get(storage.KeyHabits, &habits); err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	if habits == nil {
		habits = []models.Habit{}
	}

	// Older stores may hold habits serialized without a completions object
	for i := range habits {
		if habits[i].Completions == nil {
			habits[i].Completions = make(map[string]bool)
		}
	}

	r.habits = habits
	r.loaded = true
	return nil
}

// Habits returns the collection in insertion order.
func (r *Repository) Habits() []models.Habit {
	out := make([]models.Habit, len(r.habits))
	copy(out, r.habits)
	return out
}

// AddHabit creates a habit with a fresh id, CreatedAt of today and no
// completions, appends it to the collection and persists. On a write failure
// the habit stays in the collection and the error is returned; the next
// successful mutation rewrites everything anyway.
func (r *Repository) AddHabit(name, emoji, color string) (models.Habit, error) {
	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Emoji:       emoji,
		Color:       color,
		CreatedAt:   dateutil.Today(),
		Completions: make(map[string]bool),
	}

	r.habits = append(r.habits, habit)
	return habit, r.persist()
}

// DeleteHabit removes the habit with the given id. Deleting an unknown id is
// a no-op, not an error.
func (r *Repository) DeleteHabit(id string) error {
	kept := r.habits[:0]
	for _, h := range r.habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	r.habits = kept
	return r.persist()
}

// ToggleCompletion flips the completion flag for one day of one habit. A day
// without an entry counts as not completed, so the first toggle records true.
// Toggling an unknown habit id is a no-op.
func (r *Repository) ToggleCompletion(habitID, dayID string) error {
	if !dateutil.IsValidDay(dayID) {
		return fmt.Errorf("invalid day identifier: %s", dayID)
	}

	for i := range r.habits {
		if r.habits[i].ID == habitID {
			r.habits[i].Completions[dayID] = !r.habits[i].Completions[dayID]
			return r.persist()
		}
	}

	return nil
}

// Get returns the habit with the given id.
func (r *Repository) Get(id string) (models.Habit, bool) {
	for _, h := range r.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// StatsFor computes fresh statistics for one habit as of today.
func (r *Repository) StatsFor(id string) (models.HabitStats, bool) {
	h, ok := r.Get(id)
	if !ok {
		return models.HabitStats{}, false
	}
	return stats.Compute(h, dateutil.Today()), true
}

// AllStats computes statistics for the whole collection, keyed by habit id.
func (r *Repository) AllStats() map[string]models.HabitStats {
	today := dateutil.Today()
	all := make(map[string]models.HabitStats, len(r.habits))
	for _, h := range r.habits {
		all[h.ID] = stats.Compute(h, today)
	}
	return all
}

func (r *Repository) persist() error {
	if err := r.store.Set(storage.KeyHabits, r.habits); err != nil {
		return fmt.Errorf("failed to persist habits: %w", err)
	}
	return nil
}
