package cli

import "fmt"

type HabitListCmd struct {
	IDs bool `help:"Show habit ids."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return err
	}

	all := ctx.Repo.Habits()
	if len(all) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	allStats := ctx.Repo.AllStats()

	fmt.Println("Habits:")
	for _, h := range all {
		s := allStats[h.ID]
		fmt.Printf("  %s %-20s streak %d (best %d), %d done, %.1f%%\n",
			h.Emoji, h.Name, s.CurrentStreak, s.LongestStreak, s.TotalCompletions, s.CompletionRate)
		if c.IDs {
			fmt.Printf("      ID: %s  (since %s)\n", h.ID, h.CreatedAt)
		}
	}

	return nil
}
