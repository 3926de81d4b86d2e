package util

import (
	"errors"
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format")

// ParseDate accepts an RFC3339 timestamp or a plain YYYY-MM-DD date (UTC midnight).
func ParseDate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DateFormat, str); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// IsDateOnly reports whether str is a plain YYYY-MM-DD value.
func IsDateOnly(str string) bool {
	_, err := time.Parse(DateFormat, strings.TrimSpace(str))
	return err == nil
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
