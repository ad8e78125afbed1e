package utils

import (
	"testing"
	"time"
)

func TestPrevDay(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-05-02", "2024-05-01"},
		{"2024-05-01", "2024-04-30"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2023-03-01", "2023-02-28"},
		{"2024-01-01", "2023-12-31"},
	}

	for _, tt := range tests {
		got, err := PrevDay(tt.day)
		if err != nil {
			t.Errorf("PrevDay(%q) returned error: %v", tt.day, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PrevDay(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}

	if _, err := PrevDay("not-a-date"); err == nil {
		t.Error("PrevDay accepted malformed input")
	}
}

func TestNextDay(t *testing.T) {
	got, err := NextDay("2024-02-29")
	if err != nil {
		t.Fatalf("NextDay returned error: %v", err)
	}
	if got != "2024-03-01" {
		t.Errorf("NextDay(2024-02-29) = %q, want 2024-03-01", got)
	}
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2024-05-01")
	if err != nil {
		t.Fatalf("Weekday returned error: %v", err)
	}
	if wd != time.Wednesday {
		t.Errorf("Weekday(2024-05-01) = %v, want Wednesday", wd)
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2024-05-17"); got != "2024-05" {
		t.Errorf("MonthOf = %q, want 2024-05", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		count int
		first string
		last  string
	}{
		{"2024-02", 29, "2024-02-01", "2024-02-29"},
		{"2023-02", 28, "2023-02-01", "2023-02-28"},
		{"2024-05", 31, "2024-05-01", "2024-05-31"},
		{"2024-04", 30, "2024-04-01", "2024-04-30"},
	}

	for _, tt := range tests {
		days, err := DaysInMonth(tt.month)
		if err != nil {
			t.Errorf("DaysInMonth(%q) returned error: %v", tt.month, err)
			continue
		}
		if len(days) != tt.count {
			t.Errorf("DaysInMonth(%q) returned %d days, want %d", tt.month, len(days), tt.count)
		}
		if days[0] != tt.first || days[len(days)-1] != tt.last {
			t.Errorf("DaysInMonth(%q) range = %q..%q, want %q..%q",
				tt.month, days[0], days[len(days)-1], tt.first, tt.last)
		}
	}

	if _, err := DaysInMonth("2024-5"); err == nil {
		t.Error("DaysInMonth accepted malformed month")
	}
}
