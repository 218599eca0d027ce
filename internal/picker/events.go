package picker

import (
	"fmt"

	"github.com/akyairhashvil/calpick/internal/calendar"
)

// Unit names the field an event acts on.
type Unit int

const (
	UnitDay Unit = iota
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// Event is a user interaction the picker understands. Each event maps to
// exactly one Selection operation.
type Event interface {
	apply(sel *calendar.Selection)
}

// SetField assigns a value chosen from a discrete list.
type SetField struct {
	Unit  Unit
	Value int
}

func (e SetField) apply(sel *calendar.Selection) {
	switch e.Unit {
	case UnitYear:
		sel.SetYear(e.Value)
	case UnitMonth:
		sel.SetMonth(e.Value)
	case UnitDay:
		sel.SetDay(e.Value)
	}
}

// Step moves the selection by Delta units with calendar rollover.
type Step struct {
	Unit  Unit
	Delta int
}

func (e Step) apply(sel *calendar.Selection) {
	switch e.Unit {
	case UnitYear:
		sel.StepYear(e.Delta)
	case UnitMonth:
		sel.StepMonth(e.Delta)
	case UnitDay:
		sel.StepDay(e.Delta)
	}
}

// Pick selects a concrete grid cell.
type Pick struct {
	Date calendar.Date
}

func (e Pick) apply(sel *calendar.Selection) { sel.SelectDate(e.Date) }
