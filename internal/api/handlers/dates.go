package handlers

import (
	"fmt"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// ParseRequestDate разбирает дату из запроса.
// Принимает относительные значения "today"/"tomorrow" (разрешаются
// по часам в момент запроса) либо каноническую форму DDMMYYYY.
func ParseRequestDate(raw string, now time.Time) (time.Time, error) {
	switch domain.BookingDay(raw) {
	case domain.DayToday, domain.DayTomorrow:
		return domain.ResolveDay(domain.BookingDay(raw), now)
	}

	date, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected DDMMYYYY, \"today\" or \"tomorrow\"", raw)
	}
	return date, nil
}
