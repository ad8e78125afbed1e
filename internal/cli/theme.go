package cli

import (
	"fmt"

	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/validation"
)

type ThemeCmd struct {
	Theme string `arg:"" optional:"" help:"Theme to switch to: light or dark. Omit to print the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if c.Theme == "" {
		theme, err := ctx.Store.Theme()
		if err != nil {
			return err
		}
		fmt.Println(theme)
		return nil
	}

	theme := models.Theme(c.Theme)
	if err := validation.ValidateTheme(theme); err != nil {
		return err
	}
	if err := ctx.Store.SetTheme(theme); err != nil {
		return err
	}

	fmt.Printf("Theme set to %s\n", theme)
	return nil
}
