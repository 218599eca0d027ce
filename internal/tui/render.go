package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// gridLayout locates the first day cell on screen. Every line above the grid
// is exactly one terminal row.
type gridLayout struct {
	top  int
	left int
}

func (m PickerModel) gridLayout() gridLayout {
	opts := m.picker.Options()
	top := 1 // title
	if opts.ComboBoxes {
		top++
	}
	if opts.Arrows {
		top++
	}
	top++ // weekday header
	left := 0
	if opts.CalendarWeek {
		left = config.WeekColumnWidth
	}
	return gridLayout{top: top, left: left}
}

// cellAt maps a screen position to the grid day drawn there.
func (m PickerModel) cellAt(x, y int) (calendar.Date, bool) {
	if !m.picker.Options().Calendar {
		return calendar.Date{}, false
	}
	l := m.gridLayout()
	row, dx := y-l.top, x-l.left
	if row < 0 || dx < 0 {
		return calendar.Date{}, false
	}
	col := dx / config.CellWidth
	weeks := m.picker.Weeks()
	if col > 6 || row >= len(weeks) {
		return calendar.Date{}, false
	}
	return weeks[row].Days[col], true
}

func truncate(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

func (m PickerModel) View() string {
	opts := m.picker.Options()
	lines := []string{m.renderTitle()}
	if opts.ComboBoxes {
		lines = append(lines, m.renderFields())
	}
	if opts.Arrows {
		lines = append(lines, m.renderArrows())
	}
	if opts.Calendar {
		lines = append(lines, m.renderGrid()...)
	}
	lines = append(lines, "", m.renderStatus())
	if m.mode == modeGoto {
		lines = append(lines, "Go to: "+m.gotoInput.View())
	}
	if m.width == 0 || m.width >= config.CompactModeThreshold {
		lines = append(lines, truncate(m.theme.Dim.Render(m.registry.HelpFor(m.mode, opts)), m.width))
	}
	if m.Message != "" {
		style := m.theme.Dim
		if m.err != nil {
			style = m.theme.Error
		}
		lines = append(lines, truncate(style.Render(m.Message), m.width))
	}
	return strings.Join(lines, "\n")
}

func (m PickerModel) renderTitle() string {
	sel := m.picker.Selection()
	return m.theme.Title.Render(FormatMonthTitle(sel.Year, sel.Month))
}

func (m PickerModel) renderFields() string {
	sel := m.picker.Selection()
	fields := []struct {
		f     focusField
		value int
	}{
		{focusYear, sel.Year},
		{focusMonth, sel.Month},
		{focusDay, sel.Day},
	}
	parts := make([]string, 0, len(fields))
	for _, fv := range fields {
		style := m.theme.Field
		if m.focus == fv.f {
			style = m.theme.FocusedField
		}
		text := fmt.Sprintf("‹%s›", FormatField(fv.f, fv.value))
		parts = append(parts, style.Width(config.FieldWidth).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m PickerModel) renderArrows() string {
	a := m.theme.Arrow
	return strings.Join([]string{
		a.Render("{<<<"), a.Render("[«"), a.Render("<‹"),
		a.Render("›>"), a.Render("»]"), a.Render(">>>}"),
	}, " ")
}

// renderGrid returns the weekday header followed by one line per week.
func (m PickerModel) renderGrid() []string {
	opts := m.picker.Options()
	today := m.today()

	var header strings.Builder
	if opts.CalendarWeek {
		header.WriteString(fmt.Sprintf("%*s ", config.WeekColumnWidth-1, "W"))
	}
	for _, name := range calendar.WeekdayNames {
		header.WriteString(fmt.Sprintf("%*s ", config.CellWidth-1, name))
	}
	lines := []string{m.theme.Header.Render(header.String())}

	for _, w := range m.picker.Weeks() {
		var row strings.Builder
		if opts.CalendarWeek {
			row.WriteString(m.theme.WeekNumber.Render(fmt.Sprintf("%*d ", config.WeekColumnWidth-1, w.Number)))
		}
		for _, d := range w.Days {
			info := m.picker.Day(d, today)
			row.WriteString(m.dayStyle(info).Render(fmt.Sprintf("%*d ", config.CellWidth-1, d.Day)))
		}
		lines = append(lines, row.String())
	}
	return lines
}

func (m PickerModel) dayStyle(info calendar.DayInfo) lipgloss.Style {
	style := m.theme.Day
	if info.Weekend {
		style = m.theme.Weekend
	}
	if !info.InMonth {
		style = m.theme.Outside
	}
	if info.Today {
		style = m.theme.Today.Inherit(style)
	}
	if info.Selected {
		style = m.theme.Selected
		if m.focus == focusGrid {
			style = style.Bold(true)
		}
	}
	return style
}

func (m PickerModel) renderStatus() string {
	sel := m.picker.Selection().Date()
	bound := m.picker.Bound()
	status := fmt.Sprintf("Selected %s  Bound %s  (%s)", sel, bound, FormatPolicy(m.picker.Options().Policy))
	return truncate(m.theme.Dim.Render(status), m.width)
}
