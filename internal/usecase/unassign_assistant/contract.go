package unassign_assistant

import (
	"context"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений ассистентов
type AssignmentRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.AssistantAssignment, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
