package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name         string
	Title        lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Arrow        lipgloss.Style
	Header       lipgloss.Style
	WeekNumber   lipgloss.Style
	Day          lipgloss.Style
	Weekend      lipgloss.Style
	Outside      lipgloss.Style
	Selected     lipgloss.Style
	Today        lipgloss.Style
	Dim          lipgloss.Style
	Error        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedField: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		WeekNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Day:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Weekend:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Outside:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Bold(true),
		Today:        lipgloss.NewStyle().Underline(true).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:         "Dracula",
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),                     // Cyan
		Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                               // White
		FocusedField: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),    // Pink
		Arrow:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")),                               // Purple
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),                    // Cyan
		WeekNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                                // Comment
		Day:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                               // White
		Weekend:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")),                               // Red/Pink
		Outside:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                                // Comment
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("212")), // Pink
		Today:        lipgloss.NewStyle().Underline(true).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
	},
}

// ThemeNames lists the theme keys in cycling order.
var ThemeNames = []string{"default", "dracula"}

// LookupTheme returns the named theme, falling back to the default.
func LookupTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range ThemeNames {
		if name == current {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeNames[0]
}
