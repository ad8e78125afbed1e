package utils

import (
	"time"

	"github.com/tuncdemir/rutin/internal/constants"
)

// Today returns today's calendar day string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDay parses a calendar day string (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// FormatDay formats a time as a calendar day string (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// PrevDay returns the calendar day immediately before the given day.
// Days are compared and shifted as dates, never as timestamps, so the result
// is stable across DST transitions.
func PrevDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, -1)), nil
}

// NextDay returns the calendar day immediately after the given day.
func NextDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, 1)), nil
}

// Weekday returns the weekday of a calendar day string.
func Weekday(day string) (time.Weekday, error) {
	t, err := ParseDay(day)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// MonthOf returns the calendar month (YYYY-MM) containing the given day.
func MonthOf(day string) string {
	if len(day) < len("2006-01") {
		return day
	}
	return day[:len("2006-01")]
}

// DaysInMonth returns every calendar day string of the given month (YYYY-MM)
// in order.
func DaysInMonth(month string) ([]string, error) {
	first, err := time.Parse(constants.MonthFormat, month)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDay(d))
	}
	return days, nil
}
