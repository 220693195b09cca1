package domain

import "fmt"

// ConflictRole is the closed set of roles a master can occupy in a booking
// A master is busy during an interval by holding EITHER role
type ConflictRole string

const (
	// RolePrimary the master is the lead of the conflicting booking
	RolePrimary ConflictRole = "primary"

	// RoleAssistant the master is attached to the conflicting booking as an assistant
	RoleAssistant ConflictRole = "assistant"
)

// Valid returns true for the two known roles
func (r ConflictRole) Valid() bool {
	return r == RolePrimary || r == RoleAssistant
}

// ConflictEntry describes one booking that overlaps a candidate interval
// Derived value, never persisted; callers decide what to do with it
type ConflictEntry struct {
	BookingID int64
	Interval  TimeInterval
	Role      ConflictRole
}

// FindOverlapping отбирает из bookings те, что пересекаются с кандидатом,
// и помечает их указанной ролью. Неактивные бронирования пропускаются
func FindOverlapping(candidate TimeInterval, bookings []*Booking, role ConflictRole) []ConflictEntry {
	entries := make([]ConflictEntry, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			entries = append(entries, ConflictEntry{
				BookingID: b.ID,
				Interval:  b.Interval,
				Role:      role,
			})
		}
	}

	return entries
}

// AssistantConflictError возвращается, когда назначаемый ассистент уже занят
// Несёт конкретное пересекающееся бронирование и роль ассистента в нём,
// чтобы вызывающая сторона могла показать «уже занят как ведущий мастер на X»
type AssistantConflictError struct {
	MasterID  int64
	BookingID int64
	Interval  TimeInterval
	Role      ConflictRole
}

// Error реализует интерфейс error
func (e *AssistantConflictError) Error() string {
	return fmt.Sprintf("assistant master=%d is busy as %s in booking=%d (%s)",
		e.MasterID, e.Role, e.BookingID, e.Interval)
}
