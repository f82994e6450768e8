// Package dateutil computes the calendar boundaries used by record and target
// queries. All boundaries are taken in the device-local timezone; the backend
// receives plain yyyy-mm-dd strings.
package dateutil

import (
	"time"
)

const DayLayout = "2006-01-02"

func DayString(t time.Time) string {
	return t.Format(DayLayout)
}

func BeginningOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayRange returns the one-day range [start, end] covering t.
func DayRange(t time.Time) (string, string) {
	day := DayString(t)
	return day, day
}

// MonthRange returns the first and the last day of the given month.
func MonthRange(year, month int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return DayString(start), DayString(end)
}

// YearRange returns January 1st and December 31st of the given year.
func YearRange(year int) (string, string) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	return DayString(start), DayString(end)
}

// YearStart returns January 1st of the year of t, the date annual targets are
// keyed by.
func YearStart(t time.Time) string {
	return DayString(time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location()))
}

// DaysLeftInYear counts the days from t until December 31st, rounding up.
func DaysLeftInYear(t time.Time) int {
	end := time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location())
	left := end.Sub(t)
	days := int(left.Hours() / 24)
	if left > time.Duration(days)*24*time.Hour {
		days++
	}

	return days
}
