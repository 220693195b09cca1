package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
	"github.com/glamora-dev/GLM-SchedulingService/internal/service/bookings/models"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	bookings  []*domain.Booking
	getErr    error
	cancelled bool
	reason    string
	newStatus domain.BookingStatus
	filter    domain.LocationBookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, f.getErr
}

func (f *fakeBookingRepo) GetByLocationWithFilter(_ context.Context, filter domain.LocationBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.getErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.reason = reason
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.newStatus = status
	return nil
}

type fakeAssignmentRepo struct {
	assignments []*domain.AssistantAssignment
	err         error
}

func (f *fakeAssignmentRepo) GetByBookingID(_ context.Context, _ int64) ([]*domain.AssistantAssignment, error) {
	return f.assignments, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(t *testing.T) *domain.Booking {
	t.Helper()
	interval, err := domain.NewTimeInterval("10:00", "11:00")
	require.NoError(t, err)
	return &domain.Booking{
		ID:          1,
		LocationID:  2,
		MasterID:    5,
		ClientID:    3,
		BookingDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		Interval:    interval,
		Status:      domain.StatusConfirmed,
		ServiceName: "Стрижка",
	}
}

func TestGetByID(t *testing.T) {
	t.Run("returns booking with assistants", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking(t)}
		assignments := &fakeAssignmentRepo{assignments: []*domain.AssistantAssignment{
			{ID: 10, BookingID: 1, MasterID: 7},
			{ID: 11, BookingID: 1, MasterID: 8},
		}}
		svc := NewService(repo, assignments, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:00", resp.EndTime)
		assert.Equal(t, []int64{7, 8}, resp.AssistantIDs)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 1)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels a confirmed booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking(t)}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			CancellationReason: "клиент попросил перенести",
		})
		require.NoError(t, err)

		assert.True(t, repo.cancelled)
		assert.Equal(t, "клиент попросил перенести", repo.reason)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		booking := confirmedBooking(t)
		booking.Status = domain.StatusCancelled
		repo := &fakeBookingRepo{booking: booking}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.False(t, repo.cancelled)
	})

	t.Run("reason length limit", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking(t)}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestMarkNoShow(t *testing.T) {
	t.Run("marks a confirmed booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking(t)}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		err := svc.MarkNoShow(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusNoShow, repo.newStatus)
	})

	t.Run("no-show booking cannot be marked again", func(t *testing.T) {
		booking := confirmedBooking(t)
		booking.Status = domain.StatusNoShow
		repo := &fakeBookingRepo{booking: booking}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		err := svc.MarkNoShow(context.Background(), 1)

		assert.ErrorIs(t, err, ErrCannotMarkNoShow)
	})
}

func TestGetLocationBookings(t *testing.T) {
	t.Run("passes the filter to the repository", func(t *testing.T) {
		repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(t)}}
		svc := NewService(repo, &fakeAssignmentRepo{}, nopLogger{})

		resp, err := svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{
			LocationID: 2,
			MasterID:   ptr.Ptr(int64(5)),
			Status:     ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(2), repo.filter.LocationID)
		require.NotNil(t, repo.filter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.filter.Status)
	})

	t.Run("invalid status in filter", func(t *testing.T) {
		svc := NewService(&fakeBookingRepo{}, &fakeAssignmentRepo{}, nopLogger{})

		_, err := svc.GetLocationBookings(context.Background(), &models.GetLocationBookingsRequest{
			LocationID: 2,
			Status:     ptr.Ptr("pending"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
