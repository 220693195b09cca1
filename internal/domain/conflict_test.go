package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking(t *testing.T, id int64, start, end string, status BookingStatus) *Booking {
	t.Helper()
	return &Booking{
		ID:       id,
		Status:   status,
		Interval: mustInterval(t, start, end),
	}
}

func TestFindOverlapping(t *testing.T) {
	candidate := mustInterval(t, "10:00", "11:00")

	t.Run("finds overlapping confirmed bookings", func(t *testing.T) {
		bookings := []*Booking{
			testBooking(t, 1, "09:00", "10:30", StatusConfirmed),
			testBooking(t, 2, "11:00", "12:00", StatusConfirmed),
			testBooking(t, 3, "10:30", "11:30", StatusConfirmed),
		}

		entries := FindOverlapping(candidate, bookings, RolePrimary)

		require.Len(t, entries, 2)
		assert.Equal(t, int64(1), entries[0].BookingID)
		assert.Equal(t, int64(3), entries[1].BookingID)
		assert.Equal(t, RolePrimary, entries[0].Role)
	})

	t.Run("skips cancelled and no-show bookings", func(t *testing.T) {
		bookings := []*Booking{
			testBooking(t, 1, "10:00", "11:00", StatusCancelled),
			testBooking(t, 2, "10:00", "11:00", StatusNoShow),
		}

		assert.Empty(t, FindOverlapping(candidate, bookings, RolePrimary))
	})

	t.Run("back-to-back booking is not a conflict", func(t *testing.T) {
		bookings := []*Booking{
			testBooking(t, 1, "09:00", "10:00", StatusConfirmed),
			testBooking(t, 2, "11:00", "12:00", StatusConfirmed),
		}

		assert.Empty(t, FindOverlapping(candidate, bookings, RolePrimary))
	})

	t.Run("marks entries with the given role", func(t *testing.T) {
		bookings := []*Booking{
			testBooking(t, 1, "10:00", "11:00", StatusConfirmed),
		}

		entries := FindOverlapping(candidate, bookings, RoleAssistant)

		require.Len(t, entries, 1)
		assert.Equal(t, RoleAssistant, entries[0].Role)
	})
}

func TestAssistantConflictError(t *testing.T) {
	err := &AssistantConflictError{
		MasterID:  7,
		BookingID: 42,
		Interval:  mustInterval(t, "10:00", "11:00"),
		Role:      RoleAssistant,
	}

	assert.Contains(t, err.Error(), "master=7")
	assert.Contains(t, err.Error(), "booking=42")
	assert.Contains(t, err.Error(), "assistant")
}

func TestConflictRoleValid(t *testing.T) {
	assert.True(t, RolePrimary.Valid())
	assert.True(t, RoleAssistant.Valid())
	assert.False(t, ConflictRole("observer").Valid())
}
