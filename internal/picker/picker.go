// Package picker drives a calendar.Selection from user events. It owns the
// show/dismiss lifecycle, persists the selection through an injected Store
// and writes it back to the bound date according to the commit policy.
package picker

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/util"
)

// Key derives a picker instance key from an id path.
func Key(parts ...string) string {
	return util.HashID(parts...)
}

type Picker struct {
	key     string
	bound   BoundDate
	store   Store
	opts    models.PickerOptions
	sel     calendar.Selection
	visible bool

	// grid cache, keyed by the month it was built for
	weeks     []calendar.Week
	gridYear  int
	gridMonth int
}

func New(key string, bound BoundDate, store Store, opts models.PickerOptions) *Picker {
	if opts.Policy == "" {
		opts.Policy = models.PolicyLive
	}
	return &Picker{key: key, bound: bound, store: store, opts: opts}
}

func (p *Picker) Key() string                   { return p.key }
func (p *Picker) Options() models.PickerOptions { return p.opts }
func (p *Picker) Selection() calendar.Selection { return p.sel }
func (p *Picker) Visible() bool                 { return p.visible }

// Bound returns the current value of the bound date.
func (p *Picker) Bound() calendar.Date { return p.bound.Date() }

// SetOptions replaces the display options. The commit policy only takes
// effect for subsequent events.
func (p *Picker) SetOptions(opts models.PickerOptions) {
	if opts.Policy == "" {
		opts.Policy = p.opts.Policy
	}
	p.opts = opts
}

// Show loads the persisted selection and seeds it from the bound date unless
// this show session already did. When loading fails the picker still opens on
// the bound date so it stays usable, and the error is returned.
func (p *Picker) Show(ctx context.Context) error {
	sel, ok, err := p.store.LoadSelection(ctx, p.key)
	if err == nil && ok {
		p.sel = sel
	}
	p.visible = true
	initialized := p.sel.InitializeFrom(p.bound.Date())
	if err != nil {
		return fmt.Errorf("show picker: %w", err)
	}
	if initialized {
		if err := p.store.StoreSelection(ctx, p.key, p.sel); err != nil {
			return fmt.Errorf("show picker: %w", err)
		}
	}
	return nil
}

// Apply runs ev against the selection and persists the result. Under the
// live policy the bound date follows every edit. The in-memory selection is
// updated even when persisting fails.
func (p *Picker) Apply(ctx context.Context, ev Event) error {
	ev.apply(&p.sel)
	if p.opts.Policy == models.PolicyLive {
		p.commit()
	}
	if err := p.store.StoreSelection(ctx, p.key, p.sel); err != nil {
		return fmt.Errorf("apply %T: %w", ev, err)
	}
	return nil
}

// Confirm commits the working selection and closes the picker.
func (p *Picker) Confirm(ctx context.Context) error {
	p.commit()
	return p.Close(ctx)
}

// Cancel closes the picker without committing. Under the live policy the
// bound date already holds the last edit.
func (p *Picker) Cancel(ctx context.Context) error {
	return p.Close(ctx)
}

// Close hides the picker and resets the selection so the next Show
// re-reads the bound date.
func (p *Picker) Close(ctx context.Context) error {
	p.sel.Reset()
	p.visible = false
	if err := p.store.StoreSelection(ctx, p.key, p.sel); err != nil {
		return fmt.Errorf("close picker: %w", err)
	}
	return nil
}

func (p *Picker) commit() {
	d := p.bound.Date()
	p.sel.CommitTo(&d)
	p.bound.SetDate(d)
}

// Weeks returns the grid of the working month, rebuilding it only when the
// year or month changed.
func (p *Picker) Weeks() []calendar.Week {
	if p.sel.Month == 0 {
		return nil
	}
	if p.weeks == nil || p.gridYear != p.sel.Year || p.gridMonth != p.sel.Month {
		p.weeks = calendar.BuildMonth(p.sel.Year, p.sel.Month)
		p.gridYear, p.gridMonth = p.sel.Year, p.sel.Month
	}
	return p.weeks
}

// Day describes one grid cell relative to today and the working selection.
func (p *Picker) Day(d, today calendar.Date) calendar.DayInfo {
	return calendar.Describe(d, p.sel.Year, p.sel.Month, today, p.sel.Date())
}

// YearChoices lists the years offered by the year selector: a window around
// today that always contains the working year.
func (p *Picker) YearChoices(today calendar.Date) []int {
	from, to := today.Year-config.YearsBefore, today.Year+config.YearsAfter-1
	if p.sel.Year < from {
		from = p.sel.Year
	}
	if p.sel.Year > to {
		to = p.sel.Year
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

func (p *Picker) MonthChoices() []int {
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// DayChoices lists the valid days of the working month.
func (p *Picker) DayChoices() []int {
	if p.sel.Month == 0 {
		return nil
	}
	days := make([]int, p.sel.LastDayOfMonth())
	for i := range days {
		days[i] = i + 1
	}
	return days
}
