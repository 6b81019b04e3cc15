package list_slots

import (
	"context"
	"fmt"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// UseCase use case получения статусов слотов на дату.
// Статусы материализуются заново при каждом запросе: ядро не кэширует
// состояние реестра дольше одного цикла запроса.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения списка слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListSlots: date=%s, mall=%v, user=%q",
		domain.FormatDate(req.Date), derefOrAll(req.MallID), req.UserID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slots, err := uc.slotRepo.List(ctx, req.MallID)
	if err != nil {
		uc.logger.Error("ListSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("ListSlots: failed to get bookings for %s: %v", domain.FormatDate(req.Date), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	bySlot := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotID] = b
	}

	// Физическая занятость применима только к сегодняшнему дню:
	// на завтра датчики ничего не говорят
	sameDay := domain.SameDay(req.Date, uc.timeProvider.Now())

	views := make([]domain.SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, domain.MaterializeSlotView(slot, bySlot[slot.ID], sameDay, req.UserID))
	}

	uc.logger.Info("ListSlots: materialized %d slot views for %s", len(views), domain.FormatDate(req.Date))

	return &Response{Date: req.Date, Slots: views}, nil
}

func derefOrAll(s *string) string {
	if s == nil {
		return "all"
	}
	return *s
}
