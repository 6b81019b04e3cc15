package update_occupancy

import (
	"context"

	updateOccupancy "github.com/KeshavDaBoss/smartparkv5/internal/usecase/update_occupancy"
)

type UpdateOccupancyUseCase interface {
	Execute(ctx context.Context, req *updateOccupancy.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
