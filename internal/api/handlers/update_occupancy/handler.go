package update_occupancy

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KeshavDaBoss/smartparkv5/internal/api/handlers"
	updateOccupancy "github.com/KeshavDaBoss/smartparkv5/internal/usecase/update_occupancy"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotFound       = "слот не найден"
)

type Handler struct {
	useCase UpdateOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase UpdateOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots/{slotId}/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]

	var req UpdateOccupancyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/%s/occupancy - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &updateOccupancy.Request{
		SlotID:   slotID,
		Occupied: req.Occupied,
		Source:   req.Source,
	}

	if err := h.useCase.Execute(r.Context(), useCaseReq); err != nil {
		switch {
		case errors.Is(err, updateOccupancy.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/%s/occupancy - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, updateOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /slots/%s/occupancy - Failed: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
