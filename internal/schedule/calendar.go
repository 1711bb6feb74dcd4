package schedule

import "time"

const dateLayout = "2006-01-02"

// Calendar answers point lookups against the set of non-working dates.
// A nil *Calendar is valid and reports no holidays, so callers that fail to
// load the holiday list can pass nil and degrade instead of erroring.
type Calendar struct {
	holidays map[string]struct{}
}

// NewCalendar builds a Calendar from holiday dates.
func NewCalendar(dates []time.Time) *Calendar {
	c := &Calendar{holidays: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		c.holidays[d.Format(dateLayout)] = struct{}{}
	}
	return c
}

// IsHoliday reports whether d falls on a holiday. Only the calendar date
// matters; time of day and location offsets within the day are ignored.
func (c *Calendar) IsHoliday(d time.Time) bool {
	if c == nil {
		return false
	}
	_, ok := c.holidays[d.Format(dateLayout)]
	return ok
}

// Len returns the number of holiday dates in the calendar.
func (c *Calendar) Len() int {
	if c == nil {
		return 0
	}
	return len(c.holidays)
}
