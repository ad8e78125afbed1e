package storage

import "github.com/tuncdemir/rutin/internal/models"

// Store owns the habit, record, and note collections. All mutation goes
// through the methods below; every mutation is durably persisted before it
// returns, and a failed write leaves the in-memory state untouched.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Reads
	Habits() ([]models.Habit, error)
	Habit(id string) (models.Habit, error)
	Records() ([]models.Record, error)
	RecordFor(habitID, date string) (models.Record, bool, error)
	RecordsForDay(date string) ([]models.Record, error)
	Notes() ([]models.DayNote, error)
	NoteFor(date string) (models.DayNote, bool, error)
	Theme() (models.Theme, error)

	// Mutations
	// AddHabit constructs a habit with a fresh id and the current timestamp
	// and appends it to the habit sequence. Name validation is the caller's
	// responsibility.
	AddHabit(fields models.HabitFields) (models.Habit, error)
	// UpdateHabit merges the patch into the matching habit. Unknown ids are
	// a silent no-op.
	UpdateHabit(id string, patch models.HabitPatch) error
	// DeleteHabit removes the habit and every record belonging to it, as a
	// single atomic step. Unknown ids are a silent no-op.
	DeleteHabit(id string) error
	// ToggleRecord flips the completion for (habitID, date), creating the
	// record as completed on first toggle. Toggling never deletes a record.
	ToggleRecord(habitID, date string) (models.Record, error)
	// SetNote upserts the note for a day, replacing any previous text.
	// Empty text is stored, not treated as a deletion.
	SetNote(date, text string) error
	SetTheme(theme models.Theme) error

	// SnapshotPath returns the path of the persisted snapshot, for backups
	// and diagnostics.
	SnapshotPath() string
}
