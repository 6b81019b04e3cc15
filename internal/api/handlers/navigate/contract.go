package navigate

import (
	"context"

	navigateUC "github.com/KeshavDaBoss/smartparkv5/internal/usecase/navigate"
)

type NavigateUseCase interface {
	Execute(ctx context.Context, req *navigateUC.Request) (*navigateUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
