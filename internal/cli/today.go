package cli

import (
	"fmt"
	"strings"

	"github.com/tuncdemir/rutin/internal/stats"
	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

type TodayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if err := validation.ValidateDate(day); err != nil {
		return err
	}

	habits, err := ctx.Store.Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with: rutin habit add <name>")
		return nil
	}

	records, err := ctx.Store.Records()
	if err != nil {
		return err
	}
	dayRecords, err := ctx.Store.RecordsForDay(day)
	if err != nil {
		return err
	}

	done := make(map[string]bool, len(dayRecords))
	for _, r := range dayRecords {
		done[r.HabitID] = r.Completed
	}

	weekday, err := utils.Weekday(day)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", day)
	for _, habit := range habits {
		box := "[ ]"
		if done[habit.ID] {
			box = "[x]"
		}
		streak := stats.Streak(habit, records, day)
		flames := ""
		if streak > 0 {
			flames = fmt.Sprintf("  🔥%d", streak)
		}
		due := ""
		if !habit.Frequency.AppliesTo(weekday) {
			due = "  (not due)"
		}
		fmt.Printf("%s %s %s%s%s\n", box, habit.Emoji, habit.Name, flames, due)
	}

	percent := stats.DayCompletion(len(habits), dayRecords, day)
	fmt.Printf("\n%s %d%% complete\n", progressBar(percent, 20), percent)

	note, ok, err := ctx.Store.NoteFor(day)
	if err != nil {
		return err
	}
	if ok && note.Text != "" {
		fmt.Printf("\nNote: %s\n", note.Text)
	}

	return nil
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
