package assign_assistant

import (
	"context"

	assignAssistant "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/assign_assistant"
)

type AssignAssistantUseCase interface {
	Execute(ctx context.Context, req *assignAssistant.Request) (*assignAssistant.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
