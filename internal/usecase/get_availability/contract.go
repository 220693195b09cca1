package get_availability

import (
	"context"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByMasterAndDate получает подтверждённые бронирования мастера (ведущий) на дату
	GetByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений ассистентов
type AssignmentRepository interface {
	// GetBookingsByAssistant получает подтверждённые бронирования, где мастер - ассистент
	GetBookingsByAssistant(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetConfigWithHierarchy(ctx context.Context, locationID int64, serviceID *int64) (*domain.LocationConfig, error)
}

// RosterServiceClient интерфейс клиента для RosterService
type RosterServiceClient interface {
	GetMaster(ctx context.Context, masterID int64) (*rosterservice.Master, error)
	GetWorkingHoursWithGracefulDegradation(ctx context.Context, masterID int64, date time.Time) (*rosterservice.WorkingHours, error)
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
