package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a salon appointment in the system
// MasterID is the lead master the appointment is booked under;
// assistants are attached via AssistantAssignment rows
type Booking struct {
	ID          int64
	LocationID  int64
	MasterID    int64 // ведущий мастер (primary resource)
	ClientID    int64
	ServiceID   int64
	BookingDate time.Time
	Interval    TimeInterval
	Status      BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	ClientName   *string
	ClientPhone  *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its interval
// Only confirmed bookings participate in conflict checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
// Cancelled bookings are immutable, no un-cancel
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeMarkedNoShow returns true if the booking can be marked as a no-show
func (b *Booking) CanBeMarkedNoShow() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// LocationBookingsFilter фильтр для получения бронирований локации
type LocationBookingsFilter struct {
	LocationID      int64          // Обязательный параметр
	MasterID        *int64         // Фильтр по мастеру (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
