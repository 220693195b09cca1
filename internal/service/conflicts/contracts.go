package conflicts

import (
	"context"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByMasterAndDate возвращает подтверждённые бронирования мастера как ведущего
	GetByMasterAndDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений ассистентов
type AssignmentRepository interface {
	// GetBookingsByAssistant возвращает подтверждённые бронирования, где мастер занят как ассистент
	GetBookingsByAssistant(ctx context.Context, masterID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
