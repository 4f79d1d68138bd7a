// Package timefmt holds the display formats shared by the overlap engine,
// the CSV export, and the CLI.
package timefmt

import (
	"math"
	"time"
)

const (
	dayLabelLayout = "Mon 01/02/2006"
	clockLayout    = "3:04 PM" // 12-hour, no leading zero on the hour
	shortLayout    = "01/02 3:04 PM"
)

// DayLabel formats a date as abbreviated weekday plus zero-padded
// month/day/4-digit year, e.g. "Tue 03/03/2026".
func DayLabel(t time.Time) string {
	return t.Format(dayLabelLayout)
}

// Clock formats a time of day as a 12-hour clock with meridiem.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// ClockRange formats a window as "9:00 AM - 5:00 PM".
func ClockRange(start, end time.Time) string {
	return Clock(start) + " - " + Clock(end)
}

// ShortStamp formats a date-time for the debug shift listing, e.g.
// "03/03 9:00 PM".
func ShortStamp(t time.Time) string {
	return t.Format(shortLayout)
}

// RoundHours reports a duration in hours, rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
