package models

import "time"

// HabitType says whether the user is trying to build the behavior or break it.
// It is descriptive only and never changes how streaks or completion are computed.
type HabitType string

const (
	HabitBuild HabitType = "build"
	HabitBreak HabitType = "break"
)

// Frequency describes the cadence the user intends for a habit.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
)

// AppliesTo reports whether a habit with this frequency is due on the given
// weekday. Used by display layers to dim habits that are off-schedule; the
// streak and completion math ignores it.
func (f Frequency) AppliesTo(wd time.Weekday) bool {
	switch f {
	case FrequencyWeekdays:
		return wd != time.Saturday && wd != time.Sunday
	case FrequencyWeekends:
		return wd == time.Saturday || wd == time.Sunday
	default:
		return true
	}
}

// Habit represents a recurring behavior to track
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      HabitType `json:"type"`
	Frequency Frequency `json:"frequency"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	Penalty   string    `json:"penalty"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitFields holds the caller-supplied fields for a new habit. The store
// assigns the ID and creation timestamp.
type HabitFields struct {
	Name      string
	Type      HabitType
	Frequency Frequency
	Emoji     string
	Color     string
	Penalty   string
}

// HabitPatch is a partial update for a habit. Nil fields are left unchanged.
type HabitPatch struct {
	Name      *string
	Type      *HabitType
	Frequency *Frequency
	Emoji     *string
	Color     *string
	Penalty   *string
}

// Apply merges the non-nil patch fields into the habit. ID and CreatedAt are
// immutable and never touched.
func (p HabitPatch) Apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Frequency != nil {
		h.Frequency = *p.Frequency
	}
	if p.Emoji != nil {
		h.Emoji = *p.Emoji
	}
	if p.Color != nil {
		h.Color = *p.Color
	}
	if p.Penalty != nil {
		h.Penalty = *p.Penalty
	}
}
