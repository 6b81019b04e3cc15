package navigate

import (
	"errors"
	"net/http"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	"github.com/KeshavDaBoss/smartparkv5/internal/api/middleware"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	navigateUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/navigate"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректная дата, ожидается DDMMYYYY, today или tomorrow"
	msgUserNotFound        = "пользователь не найден"
	msgSlotNotFound        = "слот не найден на этом уровне"
	msgNoRoute             = "маршрут не найден"
	msgReservedForDisabled = "слот зарезервирован для пользователей с инвалидностью"
	msgReservedForElderly  = "слот зарезервирован для пожилых пользователей"
	msgSlotOccupied        = "слот физически занят"
)

type Handler struct {
	useCase NavigateUseCase
	logger  Logger
}

func NewHandler(useCase NavigateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/navigate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /navigate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, time.Now())
	if err != nil {
		h.logger.Warn("POST /navigate - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, navigateUC.ErrNoRoute):
			// Ожидаемый пользовательский исход, не сбой
			h.logger.Warn("POST /navigate - No route: user=%s, mall=%s, level=%d", userID, req.MallID, req.LevelID)
			handlers.RespondNotFound(w, msgNoRoute)

		case errors.Is(err, navigateUC.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, navigateUC.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, eligibility.ErrReservedForDisabled):
			handlers.RespondForbidden(w, msgReservedForDisabled)

		case errors.Is(err, eligibility.ErrReservedForElderly):
			handlers.RespondForbidden(w, msgReservedForElderly)

		case errors.Is(err, eligibility.ErrSlotOccupied):
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, navigateUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /navigate - Failed: user=%s, mall=%s, level=%d: %v",
				userID, req.MallID, req.LevelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
