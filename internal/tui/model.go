package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusField is the part of the picker that receives +/- and up/down.
type focusField int

const (
	focusGrid focusField = iota
	focusYear
	focusMonth
	focusDay
)

// inputMode selects which key bindings are live.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeGoto
)

// --- Messages ---
type exportedMsg struct {
	path string
	err  error
}

// PickerModel is the bubbletea model wrapping a picker.Picker.
type PickerModel struct {
	ctx       context.Context
	picker    *picker.Picker
	registry  *HandlerRegistry
	theme     Theme
	themeKey  string
	now       func() time.Time
	focus     focusField
	mode      inputMode
	gotoInput textinput.Model
	exportDir string
	onTheme   func(name string) error

	confirmed bool
	done      bool
	err       error
	Message   string
	width     int
	height    int
}

func NewPickerModel(ctx context.Context, p *picker.Picker) PickerModel {
	gi := textinput.New()
	gi.Placeholder = "YYYY-MM-DD"
	gi.CharLimit = 10
	gi.Width = 12

	m := PickerModel{
		ctx:       ctx,
		picker:    p,
		registry:  NewHandlerRegistry(),
		theme:     LookupTheme("default"),
		themeKey:  "default",
		now:       time.Now,
		gotoInput: gi,
		exportDir: util.ExportsDir(config.AppName),
	}
	m.registerHandlers()
	if !p.Options().Calendar && p.Options().ComboBoxes {
		m.focus = focusYear
	}
	if err := p.Show(ctx); err != nil {
		util.LogError("show picker", err)
		m.setStatusError(fmt.Sprintf("Error loading picker state: %v", err))
	}
	return m
}

// WithClock replaces the source of "today".
func (m PickerModel) WithClock(now func() time.Time) PickerModel {
	m.now = now
	return m
}

// WithTheme selects a theme by key.
func (m PickerModel) WithTheme(name string) PickerModel {
	if _, ok := Themes[name]; ok {
		m.themeKey = name
	}
	m.theme = LookupTheme(m.themeKey)
	return m
}

// WithExportDir sets where month sheets are written.
func (m PickerModel) WithExportDir(dir string) PickerModel {
	m.exportDir = dir
	return m
}

// OnThemeChange registers a callback used to persist theme switches.
func (m PickerModel) OnThemeChange(fn func(name string) error) PickerModel {
	m.onTheme = fn
	return m
}

// Confirmed reports whether the picker was closed with enter.
func (m PickerModel) Confirmed() bool { return m.confirmed }

// Done reports whether the picker was dismissed.
func (m PickerModel) Done() bool { return m.done }

func (m PickerModel) today() calendar.Date {
	return calendar.FromTime(m.now())
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			util.LogError("export pdf", msg.err)
			m.setStatusError(fmt.Sprintf("Error exporting PDF: %v", msg.err))
		} else {
			m.Message = "PDF written to " + msg.path
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.cancel()
		}
		if m.mode == modeGoto {
			return m.handleGotoInput(msg)
		}
		next, cmd, handled := m.registry.Handle(m, msg.String())
		if handled {
			return next, cmd
		}
	}
	return m, nil
}

func (m PickerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeBrowse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	d, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.focus = focusGrid
	return m.apply(picker.Pick{Date: d}), nil
}

func (m PickerModel) handleGotoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.gotoInput.Blur()
		m.gotoInput.SetValue("")
		return m, nil
	case tea.KeyEnter:
		d, err := calendar.ParseDate(m.gotoInput.Value())
		if err != nil {
			m.setStatusError("Invalid date, expected YYYY-MM-DD")
			return m, nil
		}
		m.mode = modeBrowse
		m.gotoInput.Blur()
		m.gotoInput.SetValue("")
		m.focus = focusGrid
		return m.apply(picker.Pick{Date: d}), nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

// apply sends ev to the picker and reports persistence failures without
// dropping the edit.
func (m PickerModel) apply(ev picker.Event) PickerModel {
	m.Message = ""
	m.err = nil
	if err := m.picker.Apply(m.ctx, ev); err != nil {
		util.LogError("apply event", err)
		m.setStatusError(fmt.Sprintf("Error saving selection: %v", err))
	}
	return m
}

func (m PickerModel) confirm() (tea.Model, tea.Cmd) {
	if err := m.picker.Confirm(m.ctx); err != nil {
		util.LogError("confirm picker", err)
	}
	m.confirmed = true
	m.done = true
	return m, tea.Quit
}

func (m PickerModel) cancel() (tea.Model, tea.Cmd) {
	if err := m.picker.Cancel(m.ctx); err != nil {
		util.LogError("cancel picker", err)
	}
	m.done = true
	return m, tea.Quit
}

func (m *PickerModel) setStatusError(msg string) {
	m.Message = msg
	m.err = errors.New(msg)
}
