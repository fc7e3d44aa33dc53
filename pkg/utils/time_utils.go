package utils

import "time"

// CalculateElapsedDays calculates the number of days elapsed since a given time
func CalculateElapsedDays(since time.Time) int {
	return int(time.Since(since).Hours() / 24)
}

// DaysBetween returns the number of whole days between two timestamps,
// clamped to a minimum of 1 so rate calculations never divide by zero.
func DaysBetween(first, last time.Time) int {
	days := int(last.Sub(first).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
