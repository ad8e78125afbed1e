package cli

import (
	"fmt"

	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/stats"
	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its records."`
}

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Type      string `help:"Habit type: build or break." default:"build" enum:"build,break"`
	Frequency string `help:"Frequency: daily, weekly, weekdays, or weekends." default:"daily" enum:"daily,weekly,weekdays,weekends"`
	Emoji     string `help:"Display emoji." default:""`
	Color     string `help:"Display color (hex). Defaults to the next palette color." default:""`
	Penalty   string `help:"Optional consequence for breaking the habit." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	fields := models.HabitFields{
		Name:      c.Name,
		Type:      models.HabitType(c.Type),
		Frequency: models.Frequency(c.Frequency),
		Emoji:     c.Emoji,
		Color:     c.Color,
		Penalty:   c.Penalty,
	}
	if err := validation.ValidateHabitFields(fields); err != nil {
		return err
	}

	if fields.Emoji == "" {
		fields.Emoji = constants.DefaultEmoji
	}
	if fields.Color == "" {
		habits, err := ctx.Store.Habits()
		if err != nil {
			return err
		}
		fields.Color = constants.PastelPalette[len(habits)%len(constants.PastelPalette)]
	}

	habit, err := ctx.Store.AddHabit(fields)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Emoji, habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.Habits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	records, err := ctx.Store.Records()
	if err != nil {
		return err
	}

	today := utils.Today()
	for _, habit := range habits {
		streak := stats.Streak(habit, records, today)
		kind := "build"
		if habit.Type == models.HabitBreak {
			kind = "break"
		}
		fmt.Printf("%s %s  (%s, %s, streak %d)\n", habit.Emoji, habit.Name, kind, habit.Frequency, streak)
		if habit.Penalty != "" {
			fmt.Printf("   penalty: %s\n", habit.Penalty)
		}
	}

	return nil
}

type HabitEditCmd struct {
	Habit     string  `arg:"" help:"Habit name or id."`
	Name      *string `help:"New name."`
	Type      *string `help:"New type: build or break."`
	Frequency *string `help:"New frequency: daily, weekly, weekdays, or weekends."`
	Emoji     *string `help:"New emoji."`
	Color     *string `help:"New color (hex)."`
	Penalty   *string `help:"New penalty text (empty clears it)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	patch := models.HabitPatch{
		Name:    c.Name,
		Emoji:   c.Emoji,
		Color:   c.Color,
		Penalty: c.Penalty,
	}
	if c.Name != nil {
		if err := validation.ValidateHabitName(*c.Name); err != nil {
			return err
		}
	}
	if c.Type != nil {
		t := models.HabitType(*c.Type)
		if err := validation.ValidateHabitType(t); err != nil {
			return err
		}
		patch.Type = &t
	}
	if c.Frequency != nil {
		f := models.Frequency(*c.Frequency)
		if err := validation.ValidateFrequency(f); err != nil {
			return err
		}
		patch.Frequency = &f
	}

	if err := ctx.Store.UpdateHabit(habit.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Yes   bool   `help:"Skip confirmation." short:"y"`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete habit %q and all its records? [y/N] ", habit.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
