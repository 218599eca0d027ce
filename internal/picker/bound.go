package picker

import "github.com/akyairhashvil/calpick/internal/calendar"

// BoundDate is the externally owned date the picker edits.
type BoundDate interface {
	Date() calendar.Date
	SetDate(calendar.Date)
}

type dateRef struct {
	p *calendar.Date
}

// Bind adapts a plain date variable to BoundDate.
func Bind(p *calendar.Date) BoundDate {
	return dateRef{p: p}
}

func (r dateRef) Date() calendar.Date     { return *r.p }
func (r dateRef) SetDate(d calendar.Date) { *r.p = d }
