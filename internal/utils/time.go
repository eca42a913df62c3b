package utils

import (
	"time"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
)

// DateKey returns the history-map key (YYYY-MM-DD) for t.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the first instant of the next calendar day.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns whole calendar days from a to b (negative when b is
// before a). Time-of-day is ignored.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// ParseClock parses an HH:MM wall-clock string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(constants.ClockFormat, s)
}

// ValidateClockFormat checks if the string matches the HH:MM format.
func ValidateClockFormat(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date string at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
