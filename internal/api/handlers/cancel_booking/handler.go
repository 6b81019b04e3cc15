package cancel_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	"github.com/KeshavDaBoss/smartparkv5/internal/api/middleware"
	cancelBooking "github.com/KeshavDaBoss/smartparkv5/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается DDMMYYYY, today или tomorrow"
	msgBookingNotFound    = "бронирование не найдено"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, time.Now())
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found: slot=%s, user=%s", req.SlotID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel: slot=%s, user=%s: %v", req.SlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: slot=%s, user=%s", req.SlotID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "бронирование отменено"})
}
