package cancel_booking

import (
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	cancelBooking "github.com/KeshavDaBoss/smartparkv5/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"` // DDMMYYYY, "today" или "tomorrow"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(userID string, now time.Time) (*cancelBooking.Request, error) {
	date, err := handlers.ParseRequestDate(r.Date, now)
	if err != nil {
		return nil, err
	}

	return &cancelBooking.Request{
		SlotID: r.SlotID,
		UserID: userID,
		Date:   date,
	}, nil
}
