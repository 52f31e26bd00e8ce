package cli

import "fmt"

type ToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Day   string `arg:"" optional:"" help:"Day to toggle (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return err
	}

	habit, err := ctx.findHabit(c.Habit)
	if err != nil {
		return err
	}

	day, err := resolveDay(c.Day)
	if err != nil {
		return err
	}

	if err := ctx.Repo.ToggleCompletion(habit.ID, day); err != nil {
		return err
	}

	updated, _ := ctx.Repo.Get(habit.ID)
	if updated.Completions[day] {
		fmt.Printf("%s %s: %s marked complete\n", habit.Emoji, habit.Name, day)
	} else {
		fmt.Printf("%s %s: %s marked not complete\n", habit.Emoji, habit.Name, day)
	}

	return nil
}
