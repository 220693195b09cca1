package create_booking

import (
	"context"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/clientservice"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений ассистентов
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.AssistantAssignment) (*domain.AssistantAssignment, error)
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, locationID int64, serviceID *int64) (*domain.LocationConfig, error)
}

// ConflictFinder интерфейс детектора конфликтов расписания
type ConflictFinder interface {
	// FindForMaster возвращает конфликты кандидата с занятостью мастера в обеих ролях
	FindForMaster(ctx context.Context, masterID int64, date time.Time, candidate domain.TimeInterval) ([]domain.ConflictEntry, error)
}

// RosterServiceClient интерфейс клиента для RosterService
type RosterServiceClient interface {
	GetMaster(ctx context.Context, masterID int64) (*rosterservice.Master, error)
	GetWorkingHoursWithGracefulDegradation(ctx context.Context, masterID int64, date time.Time) (*rosterservice.WorkingHours, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
