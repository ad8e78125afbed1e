package tui

import (
	"testing"

	"github.com/tuncdemir/rutin/internal/constants"
)

func TestViewCycle(t *testing.T) {
	order := []constants.SessionState{
		constants.StateToday,
		constants.StateHabits,
		constants.StateCalendar,
		constants.StateSettings,
	}

	for i, s := range order {
		want := order[(i+1)%len(order)]
		if got := nextView(s); got != want {
			t.Errorf("nextView(%v) = %v, want %v", s, got, want)
		}
		wantPrev := order[(i+len(order)-1)%len(order)]
		if got := prevView(s); got != wantPrev {
			t.Errorf("prevView(%v) = %v, want %v", s, got, wantPrev)
		}
	}
}

func TestShiftMonth(t *testing.T) {
	cases := []struct {
		month string
		delta int
		want  string
	}{
		{"2025-06", 1, "2025-07"},
		{"2025-06", -1, "2025-05"},
		{"2025-12", 1, "2026-01"},
		{"2025-01", -1, "2024-12"},
		{"bogus", 1, "bogus"},
	}
	for _, tc := range cases {
		if got := shiftMonth(tc.month, tc.delta); got != tc.want {
			t.Errorf("shiftMonth(%q, %d) = %q, want %q", tc.month, tc.delta, got, tc.want)
		}
	}
}
