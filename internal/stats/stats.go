// Package stats derives streaks and completion percentages from raw habit
// records. Everything here is a pure function over store snapshots; nothing
// is cached, so results always reflect the current habit set.
package stats

import (
	"math"

	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/internal/utils"
)

// Streak returns the number of consecutive completed days for the habit
// ending at (or immediately before) asOf. An incomplete or unrecorded asOf
// day does not break the streak; the walk simply starts the day before.
// The walk never goes further back than the habit's creation day.
func Streak(habit models.Habit, records []models.Record, asOf string) int {
	completed := make(map[string]bool, len(records))
	for _, r := range records {
		if r.HabitID == habit.ID && r.Completed {
			completed[r.Date] = true
		}
	}

	day := asOf
	if !completed[day] {
		prev, err := utils.PrevDay(day)
		if err != nil {
			return 0
		}
		day = prev
	}

	floor := utils.FormatDay(habit.CreatedAt)
	streak := 0
	for day >= floor && completed[day] {
		streak++
		prev, err := utils.PrevDay(day)
		if err != nil {
			break
		}
		day = prev
	}
	return streak
}

// DayCompletion returns the percentage (0..100, round half up) of habits
// completed on the given day. habitCount is the current number of habits;
// zero habits always yields 0.
func DayCompletion(habitCount int, records []models.Record, date string) int {
	if habitCount == 0 {
		return 0
	}

	done := 0
	for _, r := range records {
		if r.Date == date && r.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(habitCount)))
}

// MonthCompletion averages DayCompletion over the days of a month (YYYY-MM).
// For the month containing asOf only the days up to and including asOf are
// counted; months entirely after asOf yield 0.
func MonthCompletion(habitCount int, records []models.Record, month, asOf string) int {
	if habitCount == 0 {
		return 0
	}

	days, err := utils.DaysInMonth(month)
	if err != nil {
		return 0
	}

	sum, counted := 0, 0
	for _, day := range days {
		if day > asOf {
			break
		}
		sum += DayCompletion(habitCount, records, day)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(counted)))
}
