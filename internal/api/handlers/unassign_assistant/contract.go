package unassign_assistant

import (
	"context"

	unassignAssistant "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/unassign_assistant"
)

type UnassignAssistantUseCase interface {
	Execute(ctx context.Context, req *unassignAssistant.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
