package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func needsArrows(o models.PickerOptions) bool   { return o.Arrows }
func needsCalendar(o models.PickerOptions) bool { return o.Calendar }
func needsFields(o models.PickerOptions) bool   { return o.ComboBoxes }

func (m *PickerModel) registerHandlers() {
	browse := []inputMode{modeBrowse}
	r := m.registry

	r.Register(KeyBinding{Key: "enter", Handler: handleConfirm, Description: "done", Modes: browse, Priority: 10})
	r.Register(KeyBinding{Key: "esc", Handler: handleCancel, Description: "cancel", Modes: browse, Priority: 10})
	r.Register(KeyBinding{Key: "q", Handler: handleCancel, Modes: browse, Priority: 10})

	r.Register(KeyBinding{Key: "tab", Handler: handleFocusNext, Description: "focus", Modes: browse})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocusPrev, Modes: browse})

	for _, k := range []string{"left", "h"} {
		r.Register(KeyBinding{Key: k, Handler: handleLeft, Description: "left", Modes: browse})
	}
	for _, k := range []string{"right", "l"} {
		r.Register(KeyBinding{Key: k, Handler: handleRight, Description: "right", Modes: browse})
	}
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Handler: handleUp, Description: "up", Modes: browse})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Handler: handleDown, Description: "down", Modes: browse})
	}
	r.Register(KeyBinding{Key: "+", Handler: handleFieldNext, Description: "next value", Modes: browse, Requires: needsFields})
	r.Register(KeyBinding{Key: "=", Handler: handleFieldNext, Modes: browse, Requires: needsFields})
	r.Register(KeyBinding{Key: "-", Handler: handleFieldPrev, Description: "prev value", Modes: browse, Requires: needsFields})

	r.Register(KeyBinding{Key: "<", Handler: stepHandler(picker.UnitDay, -1), Description: "day-", Modes: browse, Requires: needsArrows})
	r.Register(KeyBinding{Key: ">", Handler: stepHandler(picker.UnitDay, 1), Description: "day+", Modes: browse, Requires: needsArrows})
	r.Register(KeyBinding{Key: "[", Handler: stepHandler(picker.UnitMonth, -1), Description: "month-", Modes: browse, Requires: needsArrows})
	r.Register(KeyBinding{Key: "]", Handler: stepHandler(picker.UnitMonth, 1), Description: "month+", Modes: browse, Requires: needsArrows})
	r.Register(KeyBinding{Key: "{", Handler: stepHandler(picker.UnitYear, -1), Description: "year-", Modes: browse, Requires: needsArrows})
	r.Register(KeyBinding{Key: "}", Handler: stepHandler(picker.UnitYear, 1), Description: "year+", Modes: browse, Requires: needsArrows})

	r.Register(KeyBinding{Key: "t", Handler: handleToday, Description: "today", Modes: browse})
	r.Register(KeyBinding{Key: "g", Handler: handleGoto, Description: "go to", Modes: browse})
	r.Register(KeyBinding{Key: "w", Handler: handleToggleWeeks, Description: "weeks", Modes: browse, Requires: needsCalendar})
	r.Register(KeyBinding{Key: "p", Handler: handleExport, Description: "pdf", Modes: browse})
	r.Register(KeyBinding{Key: "c", Handler: handleTheme, Description: "theme", Modes: browse})
}

func handleConfirm(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	next, cmd := m.confirm()
	return next.(PickerModel), cmd, true
}

func handleCancel(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	next, cmd := m.cancel()
	return next.(PickerModel), cmd, true
}

// focusOrder lists the focusable parts that are currently shown.
func (m PickerModel) focusOrder() []focusField {
	opts := m.picker.Options()
	var order []focusField
	if opts.Calendar {
		order = append(order, focusGrid)
	}
	if opts.ComboBoxes {
		order = append(order, focusYear, focusMonth, focusDay)
	}
	return order
}

func (m PickerModel) moveFocus(delta int) PickerModel {
	order := m.focusOrder()
	if len(order) == 0 {
		return m
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	m.focus = order[util.Wrap(idx, delta, 0, len(order)-1)]
	return m
}

func handleFocusNext(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	return m.moveFocus(1), nil, true
}

func handleFocusPrev(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	return m.moveFocus(-1), nil, true
}

func handleLeft(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		return m.apply(picker.Step{Unit: picker.UnitDay, Delta: -1}), nil, true
	}
	return m.moveFocus(-1), nil, true
}

func handleRight(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		return m.apply(picker.Step{Unit: picker.UnitDay, Delta: 1}), nil, true
	}
	return m.moveFocus(1), nil, true
}

func handleUp(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		d := m.picker.Selection().Date().AddDays(-config.DaysPerWeek)
		return m.apply(picker.Pick{Date: d}), nil, true
	}
	return m.cycleField(1), nil, true
}

func handleDown(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		d := m.picker.Selection().Date().AddDays(config.DaysPerWeek)
		return m.apply(picker.Pick{Date: d}), nil, true
	}
	return m.cycleField(-1), nil, true
}

func handleFieldNext(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		return m, nil, false
	}
	return m.cycleField(1), nil, true
}

func handleFieldPrev(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	if m.focus == focusGrid {
		return m, nil, false
	}
	return m.cycleField(-1), nil, true
}

// fieldChoices returns the enumerated values of a selector, its current
// value and the unit it edits.
func (m PickerModel) fieldChoices(f focusField) ([]int, int, picker.Unit) {
	sel := m.picker.Selection()
	switch f {
	case focusYear:
		return m.picker.YearChoices(m.today()), sel.Year, picker.UnitYear
	case focusMonth:
		return m.picker.MonthChoices(), sel.Month, picker.UnitMonth
	default:
		return m.picker.DayChoices(), sel.Day, picker.UnitDay
	}
}

// cycleField picks the neighbouring value of the focused selector, wrapping
// at the ends of its list.
func (m PickerModel) cycleField(delta int) PickerModel {
	choices, current, unit := m.fieldChoices(m.focus)
	if len(choices) == 0 {
		return m
	}
	idx := 0
	for i, v := range choices {
		if v == current {
			idx = i
		}
	}
	value := choices[util.Wrap(idx, delta, 0, len(choices)-1)]
	return m.apply(picker.SetField{Unit: unit, Value: value})
}

func stepHandler(unit picker.Unit, delta int) KeyHandler {
	return func(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
		return m.apply(picker.Step{Unit: unit, Delta: delta}), nil, true
	}
}

func handleToday(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	return m.apply(picker.Pick{Date: m.today()}), nil, true
}

func handleGoto(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	m.mode = modeGoto
	m.Message = ""
	m.gotoInput.SetValue("")
	cmd := m.gotoInput.Focus()
	return m, tea.Batch(cmd, textinput.Blink), true
}

func handleToggleWeeks(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	opts := m.picker.Options()
	opts.CalendarWeek = !opts.CalendarWeek
	m.picker.SetOptions(opts)
	return m, nil, true
}

func handleTheme(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	m = m.WithTheme(nextThemeName(m.themeKey))
	m.Message = "Theme: " + m.theme.Name
	if m.onTheme != nil {
		if err := m.onTheme(m.themeKey); err != nil {
			util.LogError("save theme", err)
			m.setStatusError(fmt.Sprintf("Error saving theme: %v", err))
		}
	}
	return m, nil, true
}

func handleExport(m PickerModel, key string) (PickerModel, tea.Cmd, bool) {
	sel := m.picker.Selection()
	weeks := m.picker.Weeks()
	withWeeks := m.picker.Options().CalendarWeek
	dir := m.exportDir
	today := m.today()
	m.Message = "Exporting..."
	return m, func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportedMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("calendar_%04d-%02d.pdf", sel.Year, sel.Month))
		err := ExportMonthPDF(path, sel.Year, sel.Month, weeks, today, sel.Date(), withWeeks)
		return exportedMsg{path: path, err: err}
	}, true
}
