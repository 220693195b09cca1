package unassign_assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	assignmentRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/assignment"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

type fakeAssignmentRepo struct {
	assignments []*domain.AssistantAssignment
	deleteErr   error
	deletedID   int64
}

func (f *fakeAssignmentRepo) GetByBookingID(_ context.Context, _ int64) ([]*domain.AssistantAssignment, error) {
	return f.assignments, nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	req := &Request{BookingID: 1, AssistantID: 7}

	newTestUseCase := func(booking *fakeBookingRepo, assignment *fakeAssignmentRepo) *UseCase {
		return NewUseCase(booking, assignment, nopLogger{})
	}

	activeBooking := func(t *testing.T) *domain.Booking {
		t.Helper()
		interval, err := domain.NewTimeInterval("10:00", "11:00")
		require.NoError(t, err)
		return &domain.Booking{
			ID:          1,
			MasterID:    5,
			BookingDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Interval:    interval,
			Status:      domain.StatusConfirmed,
		}
	}

	t.Run("removes an existing assignment", func(t *testing.T) {
		assignment := &fakeAssignmentRepo{assignments: []*domain.AssistantAssignment{
			{ID: 50, BookingID: 1, MasterID: 7},
			{ID: 51, BookingID: 1, MasterID: 8},
		}}
		uc := newTestUseCase(&fakeBookingRepo{booking: activeBooking(t)}, assignment)

		err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, int64(50), assignment.deletedID)
	})

	t.Run("booking not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, &fakeAssignmentRepo{})

		err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("assistant not assigned", func(t *testing.T) {
		assignment := &fakeAssignmentRepo{assignments: []*domain.AssistantAssignment{
			{ID: 51, BookingID: 1, MasterID: 8},
		}}
		uc := newTestUseCase(&fakeBookingRepo{booking: activeBooking(t)}, assignment)

		err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAssignmentNotFound)
		assert.Zero(t, assignment.deletedID)
	})

	t.Run("concurrent removal maps repository miss", func(t *testing.T) {
		assignment := &fakeAssignmentRepo{
			assignments: []*domain.AssistantAssignment{{ID: 50, BookingID: 1, MasterID: 7}},
			deleteErr:   assignmentRepo.ErrAssignmentNotFound,
		}
		uc := newTestUseCase(&fakeBookingRepo{booking: activeBooking(t)}, assignment)

		err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAssignmentNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssignmentRepo{})

		err := uc.Execute(context.Background(), &Request{BookingID: 1, AssistantID: 0})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
