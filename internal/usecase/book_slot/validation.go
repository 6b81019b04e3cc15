package book_slot

import (
	"fmt"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования.
// Реестр поддерживает ровно два значения: сегодня и завтра.
func validateDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	if domain.SameDay(date, today) || domain.SameDay(date, tomorrow) {
		return nil
	}

	return fmt.Errorf("%w: got %s", ErrInvalidDate, domain.FormatDate(date))
}
