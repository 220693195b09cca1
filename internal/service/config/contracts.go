package config

import (
	"context"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, locationID int64, serviceID *int64) (*domain.LocationConfig, error)
	GetAllByLocation(ctx context.Context, locationID int64) ([]*domain.LocationConfig, error)
	Upsert(ctx context.Context, cfg *domain.LocationConfig) (*domain.LocationConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
