// Package dateutil provides date parsing and formatting utilities.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat is returned for dates not in YYYY-MM-DD format.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDateOrKeyword parses a date that can also be "today" or
// "tomorrow" (case-insensitive). Used by the date prompt.
func ParseDateOrKeyword(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}
	return ParseDate(strings.TrimSpace(s))
}

// FormatDate renders a date in YYYY-MM-DD format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
