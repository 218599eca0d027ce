package config

// Database/application settings.
const (
	AppName    = "calpick"
	DBFileName = "calpick.db"
	// DBPathEnv overrides the database location.
	DBPathEnv = "CALPICK_DB"
	// LogFileName receives log output while the TUI owns the terminal.
	LogFileName = "calpick.log"
)

// Picker identity.
const (
	// DefaultPickerID names the picker instance when none is given.
	DefaultPickerID = "date_picker"
)

// Year selector window relative to today.
const (
	YearsBefore = 5
	YearsAfter  = 10
)

// Settings keys.
const (
	SettingTheme  = "theme"
	SettingPolicy = "commit_policy"
)
