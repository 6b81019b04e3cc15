package navigate

import (
	"context"
	"time"

	"github.com/KeshavDaBoss/smartparkv5/internal/domain"
	"github.com/KeshavDaBoss/smartparkv5/internal/floorplan"
	"github.com/KeshavDaBoss/smartparkv5/internal/integrations/identity"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context, mallID *string) ([]domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// IdentityClient интерфейс клиента Identity Provider
type IdentityClient interface {
	GetProfile(ctx context.Context, userID string) (*identity.Profile, error)
}

// FloorplanStore интерфейс хранилища схем уровней
type FloorplanStore interface {
	Layout(mallID string, levelID int) (*floorplan.Layout, error)
	MallLevels(mallID string) []int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
