package cli

import (
	"fmt"

	"github.com/tuncdemir/rutin/internal/stats"
	"github.com/tuncdemir/rutin/internal/utils"
)

type StreakCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	records, err := ctx.Store.Records()
	if err != nil {
		return err
	}

	streak := stats.Streak(habit, records, utils.Today())
	switch streak {
	case 0:
		fmt.Printf("%s %s: no active streak\n", habit.Emoji, habit.Name)
	case 1:
		fmt.Printf("%s %s: 🔥 1 day\n", habit.Emoji, habit.Name)
	default:
		fmt.Printf("%s %s: 🔥 %d days\n", habit.Emoji, habit.Name, streak)
	}
	return nil
}
