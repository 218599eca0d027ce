package models

import "time"

// CommitPolicy decides when the working selection is written back to the
// bound date.
type CommitPolicy string

const (
	// PolicyLive commits after every edit.
	PolicyLive CommitPolicy = "live"
	// PolicyConfirm commits only on explicit confirmation.
	PolicyConfirm CommitPolicy = "confirm"
)

// ParseCommitPolicy maps a flag or setting value to a policy. Unknown
// values fall back to PolicyLive.
func ParseCommitPolicy(s string) CommitPolicy {
	if CommitPolicy(s) == PolicyConfirm {
		return PolicyConfirm
	}
	return PolicyLive
}

// PickerOptions selects which parts of the picker are shown and how edits
// are committed.
type PickerOptions struct {
	ComboBoxes   bool // year/month/day selectors
	Arrows       bool // step controls
	Calendar     bool // month grid
	CalendarWeek bool // ISO week column
	Policy       CommitPolicy
}

// DefaultPickerOptions shows everything except the week column and commits live.
func DefaultPickerOptions() PickerOptions {
	return PickerOptions{
		ComboBoxes: true,
		Arrows:     true,
		Calendar:   true,
		Policy:     PolicyLive,
	}
}

// PickerRecord is the persisted row of a picker's working selection.
type PickerRecord struct {
	Key         string
	Year        int
	Month       int
	Day         int
	Initialized bool
	UpdatedAt   time.Time
}
