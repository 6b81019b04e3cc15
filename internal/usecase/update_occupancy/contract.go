package update_occupancy

import "context"

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	SetOccupied(ctx context.Context, id string, occupied bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
