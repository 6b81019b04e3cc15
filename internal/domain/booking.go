package domain

import (
	"fmt"
	"time"
)

// BookingDay is a user-facing relative day selector
type BookingDay string

const (
	DayToday    BookingDay = "today"
	DayTomorrow BookingDay = "tomorrow"
)

// Booking ties a slot and a calendar date to a user.
// At most one active booking exists per (slot, date) pair.
type Booking struct {
	ID          int64
	SlotID      string
	UserID      string
	BookingDate time.Time
	CreatedAt   time.Time
}

// ResolveDay resolves a relative day selector to a calendar date
// (midnight in now's location)
func ResolveDay(day BookingDay, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch day {
	case DayToday:
		return today, nil
	case DayTomorrow:
		return today.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, fmt.Errorf("unknown booking day %q", day)
	}
}

// FormatDate encodes a date in the canonical DDMMYYYY form used
// on every wire and storage boundary
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a canonical DDMMYYYY date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// SameDay returns true if two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
