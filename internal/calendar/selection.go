package calendar

// Selection is the working copy of the date being edited. The zero value is
// an uninitialized selection; InitializeFrom seeds it once per show session.
type Selection struct {
	Year        int
	Month       int
	Day         int
	Initialized bool
}

// InitializeFrom copies d into s unless s is already initialized. It reports
// whether the copy happened.
func (s *Selection) InitializeFrom(d Date) bool {
	if s.Initialized {
		return false
	}
	s.Year, s.Month, s.Day = d.Year, d.Month, d.Day
	s.Initialized = true
	return true
}

// Date returns the current working triple.
func (s Selection) Date() Date {
	return Date{Year: s.Year, Month: s.Month, Day: s.Day}
}

// LastDayOfMonth returns the length of the working month.
func (s Selection) LastDayOfMonth() int {
	return DaysInMonth(s.Year, s.Month)
}

func (s *Selection) SetYear(y int) {
	s.Year = y
	s.clampDay()
}

func (s *Selection) SetMonth(m int) {
	s.Month = m
	s.clampDay()
}

// SetDay assigns d as is; callers only offer days of the working month.
func (s *Selection) SetDay(d int) {
	s.Day = d
}

// StepYear moves delta years, clamping Feb 29 when leaving a leap year.
func (s *Selection) StepYear(delta int) {
	s.Year += delta
	s.clampDay()
}

// StepMonth moves delta months, rolling the year over and clamping the day.
func (s *Selection) StepMonth(delta int) {
	s.Year, s.Month = carryMonth(s.Year, s.Month+delta)
	s.clampDay()
}

// StepDay moves delta days, rolling into adjacent months and years.
func (s *Selection) StepDay(delta int) {
	s.Year, s.Month, s.Day = carryDay(s.Year, s.Month, s.Day+delta)
}

// SelectDate replaces the whole triple with a concrete date.
func (s *Selection) SelectDate(d Date) {
	s.Year, s.Month, s.Day = d.Year, d.Month, d.Day
}

// CommitTo overwrites the bound date with the working triple.
func (s Selection) CommitTo(dst *Date) {
	*dst = s.Date()
}

// Reset marks the selection for re-initialization on the next show.
func (s *Selection) Reset() {
	s.Initialized = false
}

func (s *Selection) clampDay() {
	if last := s.LastDayOfMonth(); s.Day > last {
		s.Day = last
	}
}
