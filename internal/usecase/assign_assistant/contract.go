package assign_assistant

import (
	"context"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений ассистентов
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.AssistantAssignment) (*domain.AssistantAssignment, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.AssistantAssignment, error)
}

// ConflictFinder интерфейс детектора конфликтов расписания
type ConflictFinder interface {
	FindForMaster(ctx context.Context, masterID int64, date time.Time, candidate domain.TimeInterval) ([]domain.ConflictEntry, error)
}

// RosterServiceClient интерфейс клиента для RosterService
type RosterServiceClient interface {
	GetMaster(ctx context.Context, masterID int64) (*rosterservice.Master, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
