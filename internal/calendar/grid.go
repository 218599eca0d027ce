package calendar

// Week is one grid row: seven consecutive days starting on a Monday.
type Week struct {
	Number int
	Days   [7]Date
}

// DayInfo carries the facts a renderer needs for one grid cell.
type DayInfo struct {
	Date     Date
	Weekday  int
	Today    bool
	InMonth  bool
	Selected bool
	Weekend  bool
}

// BuildMonth returns the rows covering year/month, padded with days of the
// adjacent months so every row is a full Monday..Sunday week. The result has
// 4, 5 or 6 rows and depends only on its arguments.
func BuildMonth(year, month int) []Week {
	first := Date{Year: year, Month: month, Day: 1}
	last := Date{Year: year, Month: month, Day: DaysInMonth(year, month)}

	start := first.AddDays(-first.Weekday())
	end := last.AddDays(6 - last.Weekday())

	var weeks []Week
	d := start
	for !end.Before(d) {
		var w Week
		for i := range w.Days {
			w.Days[i] = d
			d = d.AddDays(1)
		}
		w.Number = w.Days[0].ISOWeek()
		weeks = append(weeks, w)
	}
	return weeks
}

// Describe computes the cell facts of d for the grid of year/month.
func Describe(d Date, year, month int, today, selected Date) DayInfo {
	return DayInfo{
		Date:     d,
		Weekday:  d.Weekday(),
		Today:    d == today,
		InMonth:  d.Year == year && d.Month == month,
		Selected: d == selected,
		Weekend:  d.IsWeekend(),
	}
}
