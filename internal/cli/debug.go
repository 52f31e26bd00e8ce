package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show store path."`
	DumpHabit *DebugDumpHabitCmd `cmd:"" help:"Dump habit data as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	path := ctx.Store.ConfigPath()

	// Output in machine-readable format
	output := map[string]string{
		"path": path,
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpHabitCmd struct {
	Habit string `arg:"" optional:"" help:"Habit id or name. Omit to dump the whole collection."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *Context) error {
	if err := ctx.Repo.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	var out any
	if cmd.Habit == "" {
		out = ctx.Repo.Habits()
	} else {
		habit, err := ctx.findHabit(cmd.Habit)
		if err != nil {
			return err
		}
		out = habit
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal habit data: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
