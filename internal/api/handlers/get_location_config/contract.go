package get_location_config

import (
	"context"

	"github.com/glamora-dev/GLM-SchedulingService/internal/service/config/models"
)

type ConfigService interface {
	GetAllByLocation(ctx context.Context, locationID int64) (*models.ConfigListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
