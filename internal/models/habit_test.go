package models

import (
	"testing"
	"time"
)

func TestHabitPatchApply(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	base := Habit{
		ID:        "h1",
		Name:      "Su İçmek",
		Type:      HabitBuild,
		Frequency: FrequencyDaily,
		Emoji:     "💧",
		Color:     "#BAE1FF",
		CreatedAt: created,
	}

	t.Run("empty patch is a no-op", func(t *testing.T) {
		h := base
		HabitPatch{}.Apply(&h)
		if h != base {
			t.Errorf("empty patch changed habit: got %+v, want %+v", h, base)
		}
	})

	t.Run("partial patch only touches set fields", func(t *testing.T) {
		h := base
		name := "Spor"
		freq := FrequencyWeekdays
		HabitPatch{Name: &name, Frequency: &freq}.Apply(&h)

		if h.Name != "Spor" {
			t.Errorf("Name = %q, want %q", h.Name, "Spor")
		}
		if h.Frequency != FrequencyWeekdays {
			t.Errorf("Frequency = %q, want %q", h.Frequency, FrequencyWeekdays)
		}
		if h.Emoji != base.Emoji || h.Color != base.Color || h.Type != base.Type {
			t.Error("patch touched fields it should not have")
		}
	})

	t.Run("id and created_at are immutable", func(t *testing.T) {
		h := base
		name := "Okumak"
		HabitPatch{Name: &name}.Apply(&h)
		if h.ID != base.ID || !h.CreatedAt.Equal(created) {
			t.Errorf("patch changed immutable fields: id=%q created=%v", h.ID, h.CreatedAt)
		}
	})

	t.Run("explicit empty string clears a field", func(t *testing.T) {
		h := base
		h.Penalty = "no coffee"
		empty := ""
		HabitPatch{Penalty: &empty}.Apply(&h)
		if h.Penalty != "" {
			t.Errorf("Penalty = %q, want empty", h.Penalty)
		}
	})
}

func TestFrequencyAppliesTo(t *testing.T) {
	tests := []struct {
		freq Frequency
		day  time.Weekday
		want bool
	}{
		{FrequencyDaily, time.Monday, true},
		{FrequencyDaily, time.Sunday, true},
		{FrequencyWeekly, time.Wednesday, true},
		{FrequencyWeekdays, time.Friday, true},
		{FrequencyWeekdays, time.Saturday, false},
		{FrequencyWeekdays, time.Sunday, false},
		{FrequencyWeekends, time.Saturday, true},
		{FrequencyWeekends, time.Sunday, true},
		{FrequencyWeekends, time.Tuesday, false},
	}

	for _, tt := range tests {
		if got := tt.freq.AppliesTo(tt.day); got != tt.want {
			t.Errorf("%s.AppliesTo(%s) = %v, want %v", tt.freq, tt.day, got, tt.want)
		}
	}
}
