package cli

import (
	"fmt"
	"strings"

	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

type NoteCmd struct {
	Set  NoteSetCmd  `cmd:"" help:"Set the note for a day."`
	Show NoteShowCmd `cmd:"" help:"Show the note for a day."`
}

type NoteSetCmd struct {
	Text []string `arg:"" optional:"" help:"Note text. An empty text keeps the day entry with an empty note."`
	Date string   `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteSetCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	if err := ctx.Store.SetNote(day, text); err != nil {
		return err
	}

	if text == "" {
		fmt.Printf("Cleared note for %s\n", day)
	} else {
		fmt.Printf("Saved note for %s\n", day)
	}
	return nil
}

type NoteShowCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *NoteShowCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	note, ok, err := ctx.Store.NoteFor(day)
	if err != nil {
		return err
	}
	if !ok || note.Text == "" {
		fmt.Printf("No note for %s\n", day)
		return nil
	}

	fmt.Printf("%s: %s\n", day, note.Text)
	return nil
}
