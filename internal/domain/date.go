package domain

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// ParseDate parses a YYYY-MM-DD calendar date in local time
// The result is anchored at noon so the weekday never shifts across DST boundaries
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local), nil
}

// FormatDate formats the calendar date of t as YYYY-MM-DD in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay reports whether both times fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast reports whether date is strictly before the calendar date of now
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// IsTooLate reports whether a start at t on date is earlier than now plus the notice period
// Only today's starts can be too late; future dates never are
func IsTooLate(date time.Time, t types.TimeString, now time.Time, minNoticeMinutes int) bool {
	if !SameDay(date, now) {
		return false
	}
	start, err := t.Minutes()
	if err != nil {
		return true
	}
	return start < now.Hour()*60+now.Minute()+minNoticeMinutes
}
