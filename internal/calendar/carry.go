package calendar

// carryMonth folds a month that may lie outside 1..12 into the year.
func carryMonth(year, month int) (int, int) {
	m := month - 1
	year += floorDiv(m, 12)
	return year, m - floorDiv(m, 12)*12 + 1
}

// carryDay borrows from or carries into whole months until day fits the
// month, letting carryMonth propagate into the year. The month argument must
// already be in 1..12.
func carryDay(year, month, day int) (int, int, int) {
	for day < 1 {
		year, month = carryMonth(year, month-1)
		day += DaysInMonth(year, month)
	}
	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		year, month = carryMonth(year, month+1)
	}
	return year, month, day
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
