package eligibility

import (
	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// Intent цель обращения к слоту
type Intent string

const (
	IntentBook     Intent = "book"
	IntentNavigate Intent = "navigate"
)

// CanAccess чистая функция решения: может ли пользователь забронировать
// слот или проложить к нему маршрут. Возвращает nil либо причину отказа.
//
// Навигация шире бронирования: список онлайн-бронируемых слотов не
// ограничивает навигацию, а к своему подтвержденному бронированию
// пользователь может идти даже если слот показан занятым, чтобы
// физически найти свое место.
func CanAccess(view domain.SlotView, user domain.User, intent Intent) error {
	if view.Status == domain.StatusOccupied {
		if !(intent == IntentNavigate && view.IsMyBooking) {
			return ErrSlotOccupied
		}
	}

	switch view.Category {
	case domain.CategoryDisabledReserved:
		if !user.IsDisabled {
			return ErrReservedForDisabled
		}
	case domain.CategoryElderlyReserved:
		if !user.IsElderly {
			return ErrReservedForElderly
		}
	case domain.CategoryGeneral:
		if intent == IntentBook && !view.OnlineBookable {
			return ErrNotOnlineBookable
		}
	}

	return nil
}

// CanBook проверяет право пользователя на бронирование слота
func CanBook(view domain.SlotView, user domain.User) error {
	return CanAccess(view, user, IntentBook)
}

// CanNavigate проверяет право пользователя на навигацию к слоту
func CanNavigate(view domain.SlotView, user domain.User) error {
	return CanAccess(view, user, IntentNavigate)
}

// FilterBookable возвращает свободные слоты, которые пользователь
// может забронировать. Тотальная функция без побочных эффектов.
func FilterBookable(views []domain.SlotView, user domain.User) []domain.SlotView {
	result := make([]domain.SlotView, 0, len(views))
	for _, v := range views {
		if v.Status != domain.StatusFree {
			continue
		}
		if CanBook(v, user) == nil {
			result = append(result, v)
		}
	}
	return result
}

// FilterNavigable возвращает слоты, к которым пользователь может
// проложить маршрут. Тотальная функция без побочных эффектов.
func FilterNavigable(views []domain.SlotView, user domain.User) []domain.SlotView {
	result := make([]domain.SlotView, 0, len(views))
	for _, v := range views {
		if CanNavigate(v, user) == nil {
			result = append(result, v)
		}
	}
	return result
}
