package models

// DayNote is a free-text annotation for a calendar day, independent of any
// habit. One note per day; setting empty text keeps the note with empty text.
type DayNote struct {
	Date string `json:"date"` // YYYY-MM-DD format
	Text string `json:"text"`
}
