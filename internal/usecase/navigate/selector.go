package navigate

import (
	"errors"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/internal/eligibility"
	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
	"github.com/KeshavDaBoss/smartparkv5/internal/pathfind"
)

// candidate слот с построенным к нему маршрутом
type candidate struct {
	view   domain.SlotView
	points []pathfind.PathPoint
	cost   float64
}

// pickNearest выбирает лучшую цель среди свободных доступных пользователю
// слотов уровня: минимальная стоимость маршрута от точки входа, при равной
// стоимости берется меньший номер слота. Критерий для пользователя
// физическое расстояние, не порядок номеров.
//
// Слоты, чьи узлы не разрешаются в графе, исключаются из выбора и
// логируются: ошибка конфигурации одного слота не валит весь запрос.
func (uc *UseCase) pickNearest(layout *floorplan.Layout, views []domain.SlotView, user domain.User) *candidate {
	var best *candidate

	for _, view := range eligibility.FilterNavigable(views, user) {
		if !view.IsFree() {
			continue
		}

		points, cost, err := pathfind.Route(layout, layout.EntryNodeID, view.GraphNodeID)
		if err != nil {
			if errors.Is(err, pathfind.ErrNoPath) || errors.Is(err, pathfind.ErrTargetUnreachable) ||
				errors.Is(err, floorplan.ErrNodeNotFound) {
				uc.logger.Warn("Navigate: slot %s excluded, node %q: %v", view.ID, view.GraphNodeID, err)
				continue
			}
			uc.logger.Error("Navigate: routing to slot %s failed: %v", view.ID, err)
			continue
		}

		if best == nil ||
			cost < best.cost ||
			(cost == best.cost && view.SlotNumber < best.view.SlotNumber) {
			best = &candidate{view: view, points: points, cost: cost}
		}
	}

	return best
}

// findOwnBooking ищет подтвержденное бронирование пользователя среди слотов
// уровня. Свое бронирование выбирается безусловно: пользователь всегда
// может заново найти свое место, даже если оно показано занятым.
func findOwnBooking(views []domain.SlotView) *domain.SlotView {
	for i := range views {
		if views[i].IsMyBooking {
			return &views[i]
		}
	}
	return nil
}

// levelViews отбирает слоты одного уровня
func levelViews(views []domain.SlotView, levelID int) []domain.SlotView {
	result := make([]domain.SlotView, 0, len(views))
	for _, v := range views {
		if v.LevelID == levelID {
			result = append(result, v)
		}
	}
	return result
}
