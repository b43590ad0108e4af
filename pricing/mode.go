package pricing

import "time"

const (
	ModeSingleDate = "single"
	ModeDateRange  = "range"
)

// MAX_CALENDAR_DAYS caps the fetch window; the booking calendar endpoint only
// answers for roughly a month at a time.
const MAX_CALENDAR_DAYS = 30

// QueryMode selects how the price series is reduced: minimum price of one day
// or mean price over a date range.
type QueryMode struct {
	Kind  string
	Date  time.Time // set for ModeSingleDate
	Start time.Time // set for ModeDateRange
	End   time.Time
}

func SingleDate(d time.Time) QueryMode {
	return QueryMode{Kind: ModeSingleDate, Date: d}
}

func DateRange(start, end time.Time) QueryMode {
	return QueryMode{Kind: ModeDateRange, Start: start, End: end}
}

// StartDate returns the first day of the fetch window.
func (m QueryMode) StartDate() time.Time {
	if m.Kind == ModeSingleDate {
		return m.Date
	}
	return m.Start
}

// AmountOfDays returns how many calendar days to request, capped at
// MAX_CALENDAR_DAYS.
func (m QueryMode) AmountOfDays() int {
	if m.Kind == ModeSingleDate {
		return 1
	}
	days := int(m.End.Sub(m.Start).Hours()/24) + 1
	if days > MAX_CALENDAR_DAYS {
		return MAX_CALENDAR_DAYS
	}
	if days < 1 {
		return 1
	}
	return days
}
