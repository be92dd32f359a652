package report

import "time"

// Windows enumerates the selectable report windows, in days.
var Windows = []int{7, 14, 30, 90}

// DefaultWindow is used when a request doesn't name a window.
const DefaultWindow = 30

// ValidWindow reports whether days is one of the selectable windows.
func ValidWindow(days int) bool {
	for _, w := range Windows {
		if w == days {
			return true
		}
	}
	return false
}

// Cutoff returns the start of the local calendar day `days` before now.
// Timestamps at or after the cutoff qualify for the windowed report.
func Cutoff(now time.Time, days int) time.Time {
	day := now.AddDate(0, 0, -days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
