package cli

import (
	"encoding/json"
	"fmt"
)

type StatsCmd struct {
	Habit string `arg:"" optional:"" help:"Habit id or name. Omit to show all habits."`
	JSON  bool   `help:"Output as JSON."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return err
	}

	if c.Habit != "" {
		habit, err := ctx.findHabit(c.Habit)
		if err != nil {
			return err
		}

		s, _ := ctx.Repo.StatsFor(habit.ID)
		if c.JSON {
			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%s %s\n", habit.Emoji, habit.Name)
		fmt.Printf("  Current streak:  %d\n", s.CurrentStreak)
		fmt.Printf("  Longest streak:  %d\n", s.LongestStreak)
		fmt.Printf("  Completion rate: %.1f%%\n", s.CompletionRate)
		fmt.Printf("  Total done:      %d\n", s.TotalCompletions)
		return nil
	}

	all := ctx.Repo.Habits()
	if len(all) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	allStats := ctx.Repo.AllStats()
	if c.JSON {
		out, err := json.MarshalIndent(allStats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, h := range all {
		s := allStats[h.ID]
		fmt.Printf("%s %-20s streak %d, best %d, %.1f%%, %d done\n",
			h.Emoji, h.Name, s.CurrentStreak, s.LongestStreak, s.CompletionRate, s.TotalCompletions)
	}

	return nil
}
