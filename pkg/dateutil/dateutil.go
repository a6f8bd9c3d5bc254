// Package dateutil has the calendar helpers used by goal tracking and the dividend schedule.
package dateutil

import (
	"math"
	"time"
)

// DaysUntilDate returns the remaining days from fromDate to toDate, rounded up
// and never negative.
func DaysUntilDate(fromDate, toDate time.Time) int {
	days := toDate.Sub(fromDate).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days))
}

// ElapsedFraction reports how much of the [start, end] window has passed at now,
// clamped to [0, 1]. A zero-length window counts as fully elapsed.
func ElapsedFraction(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(start)) / float64(total)
	return math.Max(0, math.Min(1, f))
}

// Quarter returns the calendar quarter label ("Q1".."Q4") for a month number 1-12.
func Quarter(month int) string {
	switch {
	case month <= 3:
		return "Q1"
	case month <= 6:
		return "Q2"
	case month <= 9:
		return "Q3"
	default:
		return "Q4"
	}
}

// AddYears returns the goal deadline years after date. Feb 29 rolls to Mar 1 in
// non-leap years, as time.AddDate does.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}
