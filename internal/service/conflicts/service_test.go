package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	byMaster map[int64][]*domain.Booking
	err      error
	calls    int
}

func (f *fakeBookingRepo) GetByMasterAndDate(_ context.Context, masterID int64, _ time.Time) ([]*domain.Booking, error) {
	f.calls++
	return f.byMaster[masterID], f.err
}

type fakeAssignmentRepo struct {
	byMaster map[int64][]*domain.Booking
	err      error
}

func (f *fakeAssignmentRepo) GetBookingsByAssistant(_ context.Context, masterID int64, _ time.Time) ([]*domain.Booking, error) {
	return f.byMaster[masterID], f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustInterval(t *testing.T, start, end string) domain.TimeInterval {
	t.Helper()
	interval, err := domain.NewTimeInterval(types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return interval
}

func booking(t *testing.T, id int64, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:       id,
		Status:   domain.StatusConfirmed,
		Interval: mustInterval(t, start, end),
	}
}

func TestFindForMaster(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	candidate := mustInterval(t, "10:00", "11:00")

	t.Run("reports both roles primary first", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{byMaster: map[int64][]*domain.Booking{
			7: {booking(t, 1, "10:30", "11:30")},
		}}
		assignmentRepo := &fakeAssignmentRepo{byMaster: map[int64][]*domain.Booking{
			7: {booking(t, 2, "09:30", "10:30")},
		}}
		svc := NewService(bookingRepo, assignmentRepo, nopLogger{})

		entries, err := svc.FindForMaster(context.Background(), 7, date, candidate)
		require.NoError(t, err)

		require.Len(t, entries, 2)
		assert.Equal(t, domain.RolePrimary, entries[0].Role)
		assert.Equal(t, int64(1), entries[0].BookingID)
		assert.Equal(t, domain.RoleAssistant, entries[1].Role)
		assert.Equal(t, int64(2), entries[1].BookingID)
	})

	t.Run("free master gives empty list", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, &fakeAssignmentRepo{}, nopLogger{})

		entries, err := svc.FindForMaster(context.Background(), 7, date, candidate)
		require.NoError(t, err)

		assert.Empty(t, entries)
	})

	t.Run("invalid candidate rejected before repository calls", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{}
		svc := NewService(bookingRepo, &fakeAssignmentRepo{}, nopLogger{})

		bad := domain.TimeInterval{Start: "11:00", End: "10:00"}
		_, err := svc.FindForMaster(context.Background(), 7, date, bad)

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, bookingRepo.calls)
	})

	t.Run("repository error maps to internal", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{err: errors.New("connection refused")}
		svc := NewService(bookingRepo, &fakeAssignmentRepo{}, nopLogger{})

		_, err := svc.FindForMaster(context.Background(), 7, date, candidate)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestFindForMasters(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	candidate := mustInterval(t, "10:00", "11:00")

	t.Run("free masters are present with empty lists", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{byMaster: map[int64][]*domain.Booking{
			7: {booking(t, 1, "10:00", "11:00")},
		}}
		svc := NewService(bookingRepo, &fakeAssignmentRepo{}, nopLogger{})

		result, err := svc.FindForMasters(context.Background(), []int64{7, 8}, date, candidate)
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Len(t, result[7], 1)
		assert.NotNil(t, result[8])
		assert.Empty(t, result[8])
	})

	t.Run("duplicate IDs are checked once", func(t *testing.T) {
		bookingRepo := &fakeBookingRepo{}
		svc := NewService(bookingRepo, &fakeAssignmentRepo{}, nopLogger{})

		result, err := svc.FindForMasters(context.Background(), []int64{7, 7, 7}, date, candidate)
		require.NoError(t, err)

		assert.Len(t, result, 1)
		assert.Equal(t, 1, bookingRepo.calls)
	})
}
