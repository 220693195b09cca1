package assign_assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	assignmentRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/assignment"
	bookingRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/booking"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.err
}

type fakeAssignmentRepo struct {
	existing  []*domain.AssistantAssignment
	createErr error
	created   *domain.AssistantAssignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, assignment *domain.AssistantAssignment) (*domain.AssistantAssignment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *assignment
	created.ID = 100
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeAssignmentRepo) GetByBookingID(_ context.Context, _ int64) ([]*domain.AssistantAssignment, error) {
	return f.existing, nil
}

type fakeConflictFinder struct {
	conflicts []domain.ConflictEntry
	err       error
}

func (f *fakeConflictFinder) FindForMaster(_ context.Context, _ int64, _ time.Time, _ domain.TimeInterval) ([]domain.ConflictEntry, error) {
	return f.conflicts, f.err
}

type fakeRosterClient struct {
	masters map[int64]*rosterservice.Master
}

func (f *fakeRosterClient) GetMaster(_ context.Context, masterID int64) (*rosterservice.Master, error) {
	master, ok := f.masters[masterID]
	if !ok {
		return nil, rosterservice.ErrMasterNotFound
	}
	return master, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking(t *testing.T) *domain.Booking {
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

type testEnv struct {
	booking    *fakeBookingRepo
	assignment *fakeAssignmentRepo
	conflicts  *fakeConflictFinder
	roster     *fakeRosterClient
	uc         *UseCase
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		booking:    &fakeBookingRepo{booking: activeBooking(t)},
		assignment: &fakeAssignmentRepo{},
		conflicts:  &fakeConflictFinder{},
		roster: &fakeRosterClient{masters: map[int64]*rosterservice.Master{
			7: {ID: 7, LocationID: 1, IsActive: true},
		}},
	}
	env.uc = NewUseCase(env.booking, env.assignment, env.conflicts, env.roster,
		passthroughTxManager{}, nopLogger{})
	return env
}

func TestExecute(t *testing.T) {
	req := &Request{BookingID: 1, AssistantID: 7}

	t.Run("assigns assistant to active booking", func(t *testing.T) {
		env := newTestEnv(t)

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, int64(100), resp.AssignmentID)
		assert.Equal(t, int64(1), resp.BookingID)
		assert.Equal(t, int64(7), resp.AssistantID)
		require.NotNil(t, env.assignment.created)
		assert.Equal(t, int64(7), env.assignment.created.MasterID)
	})

	t.Run("assistant not found", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Execute(context.Background(), &Request{BookingID: 1, AssistantID: 99})

		assert.ErrorIs(t, err, ErrAssistantNotFound)
	})

	t.Run("inactive assistant is treated as not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.roster.masters[7].IsActive = false

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAssistantNotFound)
	})

	t.Run("booking not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.booking.booking = nil
		env.booking.err = bookingRepo.ErrBookingNotFound

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("cancelled booking rejects assignment", func(t *testing.T) {
		env := newTestEnv(t)
		env.booking.booking.Status = domain.StatusCancelled

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrBookingNotActive)
	})

	t.Run("lead master cannot be his own assistant", func(t *testing.T) {
		env := newTestEnv(t)
		env.roster.masters[5] = &rosterservice.Master{ID: 5, LocationID: 1, IsActive: true}

		_, err := env.uc.Execute(context.Background(), &Request{BookingID: 1, AssistantID: 5})

		assert.ErrorIs(t, err, ErrSameMasterAssistant)
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		env := newTestEnv(t)
		env.assignment.existing = []*domain.AssistantAssignment{
			{ID: 50, BookingID: 1, MasterID: 7},
		}

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("race on insert maps unique violation to already assigned", func(t *testing.T) {
		env := newTestEnv(t)
		env.assignment.createErr = assignmentRepo.ErrDuplicateAssignment

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("assistant limit reached", func(t *testing.T) {
		env := newTestEnv(t)
		for i := 0; i < domain.MaxAssistantsPerBooking; i++ {
			env.assignment.existing = append(env.assignment.existing, &domain.AssistantAssignment{
				ID:        int64(i + 1),
				BookingID: 1,
				MasterID:  int64(200 + i),
			})
		}

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTooManyAssistants)
	})

	t.Run("busy assistant surfaces a typed conflict", func(t *testing.T) {
		env := newTestEnv(t)
		busyInterval, err := domain.NewTimeInterval("10:30", "11:30")
		require.NoError(t, err)
		env.conflicts.conflicts = []domain.ConflictEntry{
			{BookingID: 42, Interval: busyInterval, Role: domain.RolePrimary},
		}

		_, err = env.uc.Execute(context.Background(), req)

		var conflictErr *domain.AssistantConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, int64(7), conflictErr.MasterID)
		assert.Equal(t, int64(42), conflictErr.BookingID)
		assert.Equal(t, domain.RolePrimary, conflictErr.Role)
		assert.Equal(t, types.TimeString("10:30"), conflictErr.Interval.Start)
	})

	t.Run("invalid input", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Execute(context.Background(), &Request{BookingID: 0, AssistantID: 7})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
