// Package calendar implements the date arithmetic behind the picker: a civil
// Date type, the working selection that is edited while the picker is open,
// and the month grid shown to the user.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the date for the given triple. It does not normalize.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week with Monday=0 .. Sunday=6.
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return d.Weekday() >= 5
}

// ISOWeek returns the ISO-8601 week number of d.
func (d Date) ISOWeek() int {
	_, week := d.Time().ISOWeek()
	return week
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	y, m, day := carryDay(d.Year, d.Month, d.Day+n)
	return Date{Year: y, Month: m, Day: day}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns 28, 29, 30 or 31. A month outside 1..12 is a
// programming error and panics.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	panic(fmt.Sprintf("calendar: month %d out of range", month))
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthName returns the three letter English abbreviation of month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("calendar: unknown month %d", month))
	}
	return monthNames[month-1]
}

// WeekdayNames lists the grid column headers, Monday first.
var WeekdayNames = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
