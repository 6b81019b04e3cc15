package list_slots

import (
	"context"

	listSlots "github.com/KeshavDaBoss/smartparkv5/internal/usecase/list_slots"
)

type ListSlotsUseCase interface {
	Execute(ctx context.Context, req *listSlots.Request) (*listSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
