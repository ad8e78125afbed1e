package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "rutin"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/rutin/rutin.json"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the calendar-month format used by the calendar views (YYYY-MM)
	MonthFormat = "2006-01"

	// DefaultEmoji is assigned to habits created without an emoji
	DefaultEmoji = "💧"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "rutin-"
)

// Session States
const (
	StateToday SessionState = iota
	StateHabits
	StateCalendar
	StateSettings
	StateAddHabit
	StateEditNote
	StateConfirmDelete
)

// PastelPalette holds the default habit colors, cycled through when a
// habit is added without an explicit color.
var PastelPalette = []string{
	"#FFB3BA", // red
	"#FFDFBA", // orange
	"#FFFFBA", // yellow
	"#BAFFC9", // green
	"#BAE1FF", // blue
	"#D0BAFF", // purple
	"#FFB3F7", // pink
	"#E2F0CB", // lime
}
