package update_occupancy

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/slot"
)

// Request модель сигнала о физической занятости слота
type Request struct {
	SlotID   string
	Occupied bool
	Source   string // Источник сигнала, для аудита ("esp32_mall2", "pi_mall1", ...)
}

// UseCase use case приема сигнала о занятости.
// Занятость приходит извне: ядро только фиксирует ее в реестре,
// само состояние ею не управляет.
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case обновления занятости слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("UpdateOccupancy: slot=%s, occupied=%t, source=%q", req.SlotID, req.Occupied, req.Source)

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if err := uc.slotRepo.SetOccupied(ctx, req.SlotID, req.Occupied); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("UpdateOccupancy: slot %s not found", req.SlotID)
			return ErrSlotNotFound
		}
		uc.logger.Error("UpdateOccupancy: failed to update slot %s: %v", req.SlotID, err)
		return fmt.Errorf("%w: failed to update occupancy: %v", ErrInternal, err)
	}

	return nil
}
