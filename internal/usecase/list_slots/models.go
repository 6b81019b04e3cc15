package list_slots

import (
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
)

// Request модель запроса списка слотов
type Request struct {
	Date   time.Time // Дата в запрошенном дне (полночь)
	MallID *string   // Фильтр по моллу (опционально)
	UserID string    // ID запрашивающего пользователя (опционально, для is_my_booking)
}

// Response модель ответа со статусами слотов на дату
type Response struct {
	Date  time.Time
	Slots []domain.SlotView
}
