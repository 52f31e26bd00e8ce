package cli

import (
	"fmt"
	"strings"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Emoji string `short:"e" help:"Display emoji." default:"✅"`
	Color string `short:"c" help:"Display color (any string, e.g. #22c55e)." default:"#22c55e"`
}

func (c *HabitAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return err
	}

	habit, err := ctx.Repo.AddHabit(c.Name, c.Emoji, c.Color)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", habit.Emoji, habit.Name, habit.ID)
	return nil
}
