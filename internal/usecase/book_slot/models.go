package book_slot

import (
	"time"
)

// Request модель запроса на бронирование слота
type Request struct {
	SlotID string    // ID слота, например "M1-L1-S2"
	UserID string    // ID пользователя
	Date   time.Time // Дата бронирования (полночь)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64
	SlotID    string
	UserID    string
	Date      time.Time
	CreatedAt time.Time
}
