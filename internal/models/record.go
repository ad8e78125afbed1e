package models

// Record represents a single day's completion fact for one habit.
// At most one record exists per (habit, day) pair; absence of a record
// means "not completed".
type Record struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Completed bool   `json:"completed"`
}

// Key returns the unique storage key for the record's (habit, day) pair.
func (r Record) Key() string {
	return RecordKey(r.HabitID, r.Date)
}

// RecordKey builds the storage key for a (habit, day) pair.
func RecordKey(habitID, date string) string {
	return habitID + "|" + date
}
