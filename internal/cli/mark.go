package cli

import (
	"fmt"

	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

type MarkCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	record, err := ctx.Store.ToggleRecord(habit.ID, day)
	if err != nil {
		return err
	}

	if record.Completed {
		fmt.Printf("Marked habit %q as completed for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
	}
	return nil
}
