package schedule

import "time"

// CountWorkDays counts qualifying days in [start, end], inclusive of both
// endpoints. Holidays never count. When includeWeekends is true every
// non-holiday calendar day counts (note: the flag does NOT re-include
// holidays); when false, Saturdays and Sundays are excluded as well.
// An inverted range counts zero days.
func CountWorkDays(start, end time.Time, includeWeekends bool, cal *Calendar) int {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if cal.IsHoliday(d) {
			continue
		}
		if !includeWeekends && isWeekend(d) {
			continue
		}
		days++
	}
	return days
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
