package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tuncdemir/rutin/internal/constants"
	"github.com/tuncdemir/rutin/internal/models"
)

// ValidateHabitName rejects empty or whitespace-only names. The store assumes
// callers have run this before AddHabit.
func ValidateHabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// ValidateDate checks that the string is a well-formed calendar day (YYYY-MM-DD).
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}

// ValidateMonth checks that the string is a well-formed calendar month (YYYY-MM).
func ValidateMonth(month string) error {
	if _, err := time.Parse(constants.MonthFormat, month); err != nil {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
	}
	return nil
}

// ValidateHabitType checks the type is one of the known variants.
func ValidateHabitType(t models.HabitType) error {
	switch t {
	case models.HabitBuild, models.HabitBreak:
		return nil
	}
	return fmt.Errorf("invalid habit type %q (expected build or break)", t)
}

// ValidateFrequency checks the frequency is one of the known variants.
func ValidateFrequency(f models.Frequency) error {
	switch f {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyWeekdays, models.FrequencyWeekends:
		return nil
	}
	return fmt.Errorf("invalid frequency %q (expected daily, weekly, weekdays, or weekends)", f)
}

// ValidateTheme checks the theme is one of the known variants.
func ValidateTheme(t models.Theme) error {
	switch t {
	case models.ThemeLight, models.ThemeDark:
		return nil
	}
	return fmt.Errorf("invalid theme %q (expected light or dark)", t)
}

// ValidateHabitFields validates everything a new habit needs before it is
// handed to the store.
func ValidateHabitFields(f models.HabitFields) error {
	if err := ValidateHabitName(f.Name); err != nil {
		return err
	}
	if err := ValidateHabitType(f.Type); err != nil {
		return err
	}
	return ValidateFrequency(f.Frequency)
}
