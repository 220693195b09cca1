package domain

import "time"

// AssistantAssignment links a booking to a secondary master
// A master busy as assistant blocks the booking's interval the same way
// the lead master does
type AssistantAssignment struct {
	ID        int64
	BookingID int64
	MasterID  int64
	CreatedAt time.Time
}
