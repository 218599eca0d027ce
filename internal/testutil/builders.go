package testutil

import (
	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
)

// SelectionBuilder provides fluent API for creating test selections.
type SelectionBuilder struct {
	sel calendar.Selection
}

func NewSelection() *SelectionBuilder {
	return &SelectionBuilder{
		sel: calendar.Selection{Year: 2024, Month: 1, Day: 1, Initialized: true},
	}
}

func (b *SelectionBuilder) At(year, month, day int) *SelectionBuilder {
	b.sel.Year, b.sel.Month, b.sel.Day = year, month, day
	return b
}

func (b *SelectionBuilder) Build() calendar.Selection {
	return b.sel
}

// OptionsBuilder provides fluent API for creating picker options.
type OptionsBuilder struct {
	opts models.PickerOptions
}

func NewOptions() *OptionsBuilder {
	return &OptionsBuilder{opts: models.DefaultPickerOptions()}
}

func (b *OptionsBuilder) WithPolicy(p models.CommitPolicy) *OptionsBuilder {
	b.opts.Policy = p
	return b
}

func (b *OptionsBuilder) WithWeeks() *OptionsBuilder {
	b.opts.CalendarWeek = true
	return b
}

func (b *OptionsBuilder) WithoutFields() *OptionsBuilder {
	b.opts.ComboBoxes = false
	return b
}

func (b *OptionsBuilder) WithoutArrows() *OptionsBuilder {
	b.opts.Arrows = false
	return b
}

func (b *OptionsBuilder) WithoutCalendar() *OptionsBuilder {
	b.opts.Calendar = false
	return b
}

func (b *OptionsBuilder) Build() models.PickerOptions {
	return b.opts
}
