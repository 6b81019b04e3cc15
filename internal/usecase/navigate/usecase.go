package navigate

import (
	"context"
	"errors"
	"fmt"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
	identityClient "github.com/KeshavDaBoss/smartparkv5/internal/integrations/identity"
	"github.com/KeshavDaBoss/smartparkv5/internal/pathfind"
)

// UseCase use case выбора цели и построения маршрута.
// Явная команда: вызывается напрямую обработчиком, никакой реактивности
// на посторонние изменения состояния.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	identity     IdentityClient
	floorplans   FloorplanStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	identity IdentityClient,
	floorplans FloorplanStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		identity:     identity,
		floorplans:   floorplans,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case навигации.
//
// Порядок выбора цели при автоматическом режиме (req.SlotID == nil):
//  1. свое бронирование на этом уровне, безусловно;
//  2. ближайший по стоимости маршрута свободный доступный слот уровня;
//  3. другие уровни молла, как подсказка уровня без маршрута;
//  4. свободных мест в молле нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Navigate: user=%s, mall=%s, level=%d, date=%s, slot=%v",
		req.UserID, req.MallID, req.LevelID, domain.FormatDate(req.Date), req.SlotID)

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("Navigate: validation failed: %v", err)
		return nil, err
	}

	// Признаки пользователя
	profile, err := uc.identity.GetProfile(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("Navigate: user %s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("Navigate: failed to get profile for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user profile: %v", ErrInternal, err)
	}

	user := domain.User{
		ID:         profile.ID,
		Username:   profile.Username,
		IsDisabled: profile.IsDisabled,
		IsElderly:  profile.IsElderly,
	}

	// Схема запрошенного уровня
	layout, err := uc.floorplans.Layout(req.MallID, req.LevelID)
	if err != nil {
		uc.logger.Warn("Navigate: layout %s-L%d not found", req.MallID, req.LevelID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Материализуем статусы слотов всего молла на дату
	views, err := uc.mallViews(ctx, req)
	if err != nil {
		return nil, err
	}

	current := levelViews(views, req.LevelID)

	// Явная цель: навигация к конкретному слоту
	if req.SlotID != nil {
		return uc.routeToSlot(layout, current, *req.SlotID, user)
	}

	// 1. Свое бронирование на этом уровне всегда в приоритете
	if own := findOwnBooking(current); own != nil {
		uc.logger.Info("Navigate: user %s has own booking on slot %s, targeting it", req.UserID, own.ID)
		return uc.routeToView(layout, *own)
	}

	// 2. Ближайший свободный доступный слот уровня
	if best := uc.pickNearest(layout, current, user); best != nil {
		uc.logger.Info("Navigate: nearest slot %s at cost %.1f", best.view.ID, best.cost)
		return routedResponse(best), nil
	}

	// 3. Остальные уровни молла
	for _, levelID := range uc.floorplans.MallLevels(req.MallID) {
		if levelID == req.LevelID {
			continue
		}

		otherLayout, err := uc.floorplans.Layout(req.MallID, levelID)
		if err != nil {
			continue
		}

		if best := uc.pickNearest(otherLayout, levelViews(views, levelID), user); best != nil {
			uc.logger.Info("Navigate: no slots on level %d, availability on level %d", req.LevelID, levelID)
			return &Response{Outcome: OutcomeOtherLevel, AvailableLevelID: levelID}, nil
		}
	}

	// 4. Мест нет во всем молле
	uc.logger.Info("Navigate: no availability in mall %s for %s", req.MallID, domain.FormatDate(req.Date))
	return &Response{Outcome: OutcomeNoAvailability}, nil
}

// routeToSlot строит маршрут к явно выбранному слоту уровня
func (uc *UseCase) routeToSlot(layout *floorplan.Layout, views []domain.SlotView, slotID string, user domain.User) (*Response, error) {
	for _, view := range views {
		if view.ID != slotID {
			continue
		}

		if err := eligibility.CanNavigate(view, user); err != nil {
			uc.logger.Warn("Navigate: user %s denied navigation to slot %s: %v", user.ID, slotID, err)
			return nil, err
		}

		return uc.routeToView(layout, view)
	}

	return nil, fmt.Errorf("%w: %q", ErrSlotNotFound, slotID)
}

// routeToView строит маршрут от точки входа уровня к слоту
func (uc *UseCase) routeToView(layout *floorplan.Layout, view domain.SlotView) (*Response, error) {
	points, cost, err := pathfind.Route(layout, layout.EntryNodeID, view.GraphNodeID)
	if err != nil {
		if errors.Is(err, pathfind.ErrNoPath) || errors.Is(err, pathfind.ErrTargetUnreachable) ||
			errors.Is(err, floorplan.ErrNodeNotFound) {
			uc.logger.Warn("Navigate: no route to slot %s: %v", view.ID, err)
			return nil, fmt.Errorf("%w: slot %s: %v", ErrNoRoute, view.ID, err)
		}
		uc.logger.Error("Navigate: routing to slot %s failed: %v", view.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return routedResponse(&candidate{view: view, points: points, cost: cost}), nil
}

// mallViews материализует статусы всех слотов молла на дату запроса
func (uc *UseCase) mallViews(ctx context.Context, req *Request) ([]domain.SlotView, error) {
	slots, err := uc.slotRepo.List(ctx, &req.MallID)
	if err != nil {
		uc.logger.Error("Navigate: failed to list slots for mall %s: %v", req.MallID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("Navigate: failed to get bookings for %s: %v", domain.FormatDate(req.Date), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	bySlot := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotID] = b
	}

	sameDay := domain.SameDay(req.Date, uc.timeProvider.Now())

	views := make([]domain.SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, domain.MaterializeSlotView(slot, bySlot[slot.ID], sameDay, req.UserID))
	}
	return views, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.MallID == "" {
		return fmt.Errorf("%w: mallID is required", ErrInvalidInput)
	}
	if req.LevelID <= 0 {
		return fmt.Errorf("%w: levelID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotID != nil && *req.SlotID == "" {
		return fmt.Errorf("%w: slotID must not be empty when provided", ErrInvalidInput)
	}
	return nil
}

func routedResponse(c *candidate) *Response {
	return &Response{
		Outcome: OutcomeRouted,
		Slot: &TargetSlot{
			ID:         c.view.ID,
			SlotNumber: c.view.SlotNumber,
			LevelID:    c.view.LevelID,
		},
		Points:    c.points,
		TotalCost: c.cost,
	}
}
