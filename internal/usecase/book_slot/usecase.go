package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	bookingRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/booking"
	slotRepo "github.com/KeshavDaBoss/smartparkv5/internal/infra/storage/slot"
	identityClient "github.com/KeshavDaBoss/smartparkv5/internal/integrations/identity"
)

// UseCase use case бронирования слота.
// Проверка "нет бронирования, не занят, пользователь имеет право" и запись
// выполняются неделимо: сериализуемая транзакция с блокировкой строк,
// уникальное ограничение БД как последняя линия защиты. Из двух
// одновременных запросов на одну пару (слот, дата) ровно один получает Ok.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	identity     IdentityClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	identity IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		identity:     identity,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%s, user=%s, date=%s",
		req.SlotID, req.UserID, domain.FormatDate(req.Date))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна быть сегодня или завтра
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("BookSlot: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем признаки пользователя из Identity Provider
	profile, err := uc.identity.GetProfile(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("BookSlot: user %s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("BookSlot: failed to get profile for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user profile: %v", ErrInternal, err)
	}

	user := domain.User{
		ID:         profile.ID,
		Username:   profile.Username,
		IsDisabled: profile.IsDisabled,
		IsElderly:  profile.IsElderly,
	}

	var result *domain.Booking

	// 4. Проверка и запись неделимы, в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Слот (с блокировкой строки)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot %s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("BookSlot: failed to get slot %s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Существующее бронирование на эту дату (с блокировкой строки)
		existing, err := uc.bookingRepo.GetBySlotAndDate(txCtx, req.SlotID, req.Date)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("BookSlot: failed to check existing booking: %v", err)
			return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("BookSlot: slot %s already booked for %s by user %s",
				req.SlotID, domain.FormatDate(req.Date), existing.UserID)
			return ErrConflict
		}

		// 4.3. Физически занятый слот нельзя забронировать независимо
		// от записей о бронированиях (занятость применима к сегодня)
		view := domain.MaterializeSlotView(*slot, nil, domain.SameDay(req.Date, now), req.UserID)
		if view.Status == domain.StatusOccupied {
			uc.logger.Warn("BookSlot: slot %s is physically occupied", req.SlotID)
			return ErrConflict
		}

		// 4.4. Правила доступа: категория слота против признаков пользователя
		if err := eligibility.CanBook(view, user); err != nil {
			uc.logger.Warn("BookSlot: denied for user %s on slot %s: %v", req.UserID, req.SlotID, err)
			return err
		}

		// 4.5. Создаем бронирование
		booking := &domain.Booking{
			SlotID:      req.SlotID,
			UserID:      req.UserID,
			BookingDate: req.Date,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyBooked) {
				return ErrConflict
			}
			uc.logger.Error("BookSlot: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSlot: booking id=%d created for slot=%s, user=%s, date=%s",
		result.ID, result.SlotID, result.UserID, domain.FormatDate(result.BookingDate))

	return &Response{
		BookingID: result.ID,
		SlotID:    result.SlotID,
		UserID:    result.UserID,
		Date:      result.BookingDate,
		CreatedAt: result.CreatedAt,
	}, nil
}
