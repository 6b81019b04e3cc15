package list_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	listSlots "github.com/KeshavDaBoss/smartparkv5/internal/usecase/list_slots"
)

const (
	msgMissingDate  = "отсутствует обязательный параметр date"
	msgInvalidDate  = "некорректная дата, ожидается DDMMYYYY, today или tomorrow"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=DDMMYYYY&mallId=mall1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseRequestDate(rawDate, time.Now())
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &listSlots.Request{
		Date: date,
		// Необязательный идентификатор: маршрут публичный, без Auth middleware
		UserID: r.Header.Get("X-User-ID"),
	}

	if mallID := r.URL.Query().Get("mallId"); mallID != "" {
		req.MallID = &mallID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
