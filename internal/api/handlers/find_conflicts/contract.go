package find_conflicts

import (
	"context"

	findConflicts "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/find_conflicts"
)

type FindConflictsUseCase interface {
	Execute(ctx context.Context, req *findConflicts.Request) (*findConflicts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
