package domain

import "time"

// DateLayout is the calendar-date key format (local time)
const DateLayout = "2006-01-02"

// WeeklyDays is the length of the rolling activity window
const WeeklyDays = 7

// DateKey returns the calendar-date key for a moment in time
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of whole calendar days from one date key to
// another. Malformed keys count as a full window of elapsed days.
// Keys are parsed in UTC so the diff is immune to DST-length days.
func DaysBetween(from, to string) int {
	fromDate, err := time.Parse(DateLayout, from)
	if err != nil {
		return WeeklyDays
	}
	toDate, err := time.Parse(DateLayout, to)
	if err != nil {
		return WeeklyDays
	}
	return int(toDate.Sub(fromDate) / (24 * time.Hour))
}

// ShiftWeekly moves a 7-slot activity window forward by diffDays calendar days.
// Index 0 is the newest day. Entries shifted past the end are dropped, newly
// exposed slots are false. A shift of 7 or more days clears the window.
func ShiftWeekly(week [WeeklyDays]bool, diffDays int) [WeeklyDays]bool {
	if diffDays <= 0 {
		return week
	}
	var shifted [WeeklyDays]bool
	if diffDays >= WeeklyDays {
		return shifted
	}
	for i := WeeklyDays - 1; i >= diffDays; i-- {
		shifted[i] = week[i-diffDays]
	}
	return shifted
}
