package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/stats"
	"github.com/tuncdemir/rutin/internal/utils"
	"github.com/tuncdemir/rutin/internal/validation"
)

type CalendarCmd struct {
	Month string `help:"Month in YYYY-MM format (default: current month)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	month := c.Month
	if month == "" {
		month = utils.MonthOf(utils.Today())
	} else if err := validation.ValidateMonth(month); err != nil {
		return err
	}

	habits, err := ctx.Store.Habits()
	if err != nil {
		return err
	}
	records, err := ctx.Store.Records()
	if err != nil {
		return err
	}
	notes, err := ctx.Store.Notes()
	if err != nil {
		return err
	}

	noted := make(map[string]bool, len(notes))
	for _, n := range notes {
		if n.Text != "" {
			noted[n.Date] = true
		}
	}

	days, err := utils.DaysInMonth(month)
	if err != nil {
		return err
	}
	percents := make(map[string]int, len(days))
	for _, day := range days {
		percents[day] = stats.DayCompletion(len(habits), records, day)
	}

	fmt.Print(renderMonth(month, utils.Today(), percents, noted))

	summary := stats.MonthCompletion(len(habits), records, month, utils.Today())
	fmt.Printf("\nMonth completion: %d%%\n", summary)
	return nil
}

// renderMonth draws a Monday-first calendar grid. Each day cell shows the day
// number plus a fill glyph for its completion percent and a dot for notes.
func renderMonth(month, today string, percents map[string]int, noted map[string]bool) string {
	first, err := time.Parse(constants.MonthFormat, month)
	if err != nil {
		return ""
	}
	days, err := utils.DaysInMonth(month)
	if err != nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", first.Format("January 2006"))
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")

	// Monday-first offset of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	col := offset
	for _, day := range days {
		dom := day[len(day)-2:]
		marker := fillGlyph(percents[day])
		if noted[day] {
			marker = "•"
		}
		lead := " "
		if day == today {
			lead = ">"
		}
		fmt.Fprintf(&b, "%s%s%s", lead, dom, marker)
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func fillGlyph(percent int) string {
	switch {
	case percent >= 100:
		return "●"
	case percent >= 50:
		return "◐"
	case percent > 0:
		return "○"
	default:
		return " "
	}
}
