package book_slot

import (
	"errors"
	"net/http"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	"github.com/KeshavDaBoss/smartparkv5/internal/api/middleware"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	bookSlot "github.com/KeshavDaBoss/smartparkv5/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректная дата, ожидается DDMMYYYY, today или tomorrow"
	msgDateOutOfWindow     = "бронирование возможно только на сегодня или завтра"
	msgSlotNotFound        = "слот не найден"
	msgUserNotFound        = "пользователь не найден"
	msgConflict            = "слот уже занят на эту дату"
	msgReservedForDisabled = "слот зарезервирован для пользователей с инвалидностью"
	msgReservedForElderly  = "слот зарезервирован для пожилых пользователей"
	msgNotOnlineBookable   = "слот недоступен для онлайн-бронирования"
	msgSlotOccupied        = "слот физически занят"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, time.Now())
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Причины отказа различимы машинно: каждая ветвь UI своя
		switch {
		case errors.Is(err, bookSlot.ErrConflict):
			h.logger.Warn("POST /bookings - Conflict: slot=%s, user=%s", req.SlotID, userID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, eligibility.ErrReservedForDisabled):
			handlers.RespondForbidden(w, msgReservedForDisabled)

		case errors.Is(err, eligibility.ErrReservedForElderly):
			handlers.RespondForbidden(w, msgReservedForElderly)

		case errors.Is(err, eligibility.ErrNotOnlineBookable):
			handlers.RespondForbidden(w, msgNotOnlineBookable)

		case errors.Is(err, eligibility.ErrSlotOccupied):
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: %s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: %s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookSlot.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to book slot=%s, user=%s: %v", req.SlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, slot=%s, user=%s",
		result.BookingID, result.SlotID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
