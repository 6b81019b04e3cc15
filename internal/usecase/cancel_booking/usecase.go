package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	bookingRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/booking"
)

// Request модель запроса на отмену бронирования
type Request struct {
	SlotID string
	UserID string
	Date   time.Time
}

// UseCase use case отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: slot=%s, user=%s, date=%s",
		req.SlotID, req.UserID, domain.FormatDate(req.Date))

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	err := uc.bookingRepo.Delete(ctx, req.SlotID, req.UserID, req.Date)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: no booking for slot=%s, user=%s, date=%s",
				req.SlotID, req.UserID, domain.FormatDate(req.Date))
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete booking: %v", err)
		return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: booking cancelled for slot=%s, user=%s, date=%s",
		req.SlotID, req.UserID, domain.FormatDate(req.Date))
	return nil
}
