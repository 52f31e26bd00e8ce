package cli

import (
	"fmt"

	"github.com/julianstephens/habitgrid/internal/storage"
)

type ThemeCmd struct {
	Value string `arg:"" optional:"" enum:",light,dark" help:"Theme to set (light|dark). Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Value == "" {
		theme := "light"
		if _, err := ctx.Store.Get(storage.KeyTheme, &theme); err != nil {
			return err
		}
		fmt.Println(theme)
		return nil
	}

	if err := ctx.Store.Set(storage.KeyTheme, c.Value); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", c.Value)
	return nil
}
