package book_slot

import (
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	bookSlot "github.com/KeshavDaBoss/smartparkv5/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"` // DDMMYYYY, "today" или "tomorrow"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID int64  `json:"booking_id"`
	SlotID    string `json:"slot_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(userID string, now time.Time) (*bookSlot.Request, error) {
	date, err := handlers.ParseRequestDate(r.Date, now)
	if err != nil {
		return nil, err
	}

	return &bookSlot.Request{
		SlotID: r.SlotID,
		UserID: userID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResponse {
	return &BookingResponse{
		BookingID: resp.BookingID,
		SlotID:    resp.SlotID,
		UserID:    resp.UserID,
		Date:      domain.FormatDate(resp.Date),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
