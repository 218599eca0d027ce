package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
)

// FormatMonthTitle formats the grid caption (e.g., "Feb 2024").
func FormatMonthTitle(year, month int) string {
	return fmt.Sprintf("%s %d", calendar.MonthName(month), year)
}

// FormatField formats a selector value for display.
func FormatField(f focusField, value int) string {
	switch f {
	case focusMonth:
		return calendar.MonthName(value)
	case focusDay:
		return fmt.Sprintf("%02d", value)
	}
	return strconv.Itoa(value)
}

// FormatPolicy returns a short label for the commit policy.
func FormatPolicy(p models.CommitPolicy) string {
	if p == models.PolicyConfirm {
		return "enter to save"
	}
	return "live"
}
