package models

// Habit represents a tracked behavior with per-day boolean completions
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"` // YYYY-MM-DD format
	// Completions maps a calendar day (YYYY-MM-DD) to a completion flag.
	// A missing key and an explicit false both mean "not completed", but
	// only days with an entry count toward the completion-rate denominator.
	Completions map[string]bool `json:"completions"`
}

// HabitStats holds metrics derived from a habit's completion history.
// Computed on demand, never persisted.
type HabitStats struct {
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	CompletionRate   float64 `json:"completionRate"`
	TotalCompletions int     `json:"totalCompletions"`
}
