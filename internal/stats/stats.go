package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/habitgrid/internal/dateutil"
	"github.com/julianstephens/habitgrid/internal/models"
)

// Compute derives all metrics for a habit relative to the given day.
// Pure function of the completion map and the day; holds no state.
func Compute(habit models.Habit, today string) models.HabitStats {
	return models.HabitStats{
		CurrentStreak:    CurrentStreak(habit.Completions, today),
		LongestStreak:    LongestStreak(habit.Completions),
		CompletionRate:   CompletionRate(habit.Completions),
		TotalCompletions: TotalCompletions(habit.Completions),
	}
}

// CurrentStreak walks backward day by day starting from today. Today itself
// never breaks the run: an uncompleted today is pending, not broken, so the
// walk simply continues with yesterday. From yesterday backward the first
// incomplete day terminates the walk.
func CurrentStreak(completions map[string]bool, today string) int {
	t, err := time.ParseInLocation(dateutil.DayFormat, today, time.Local)
	if err != nil {
		return 0
	}

	streak := 0
	for offset := 0; ; offset++ {
		day := t.AddDate(0, 0, -offset).Format(dateutil.DayFormat)
		if completions[day] {
			streak++
			continue
		}
		if offset == 0 {
			continue
		}
		break
	}

	return streak
}

// LongestStreak scans the recorded days in chronological (string) order and
// tracks the longest run of consecutive true entries. The scan orders by key
// value only and does not check that adjacent entries are adjacent calendar
// days: a day with no entry at all is invisible to it and does not reset the
// run.
func LongestStreak(completions map[string]bool) int {
	days := make([]string, 0, len(completions))
	for day := range completions {
		days = append(days, day)
	}
	sort.Strings(days)

	longest, run := 0, 0
	for _, day := range days {
		if completions[day] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	return longest
}

// CompletionRate returns the percentage of recorded days marked complete,
// in [0,100]. Days never toggled have no entry and are not counted in the
// denominator. Returns 0 when nothing has been recorded.
func CompletionRate(completions map[string]bool) float64 {
	if len(completions) == 0 {
		return 0
	}
	return 100 * float64(TotalCompletions(completions)) / float64(len(completions))
}

// TotalCompletions counts the days marked complete.
func TotalCompletions(completions map[string]bool) int {
	total := 0
	for _, done := range completions {
		if done {
			total++
		}
	}
	return total
}
