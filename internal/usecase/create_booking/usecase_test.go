package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	configRepo "github.com/glamora-dev/GLM-SchedulingService/internal/infra/storage/config"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/clientservice"
	"github.com/glamora-dev/GLM-SchedulingService/internal/integrations/rosterservice"
)

// bookingStore потокобезопасное in-memory хранилище бронирований
// Мьютекс держится на протяжении всей "транзакции", имитируя
// сериализуемую изоляцию: проверка конфликтов и вставка атомарны
type bookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

type storeBookingRepo struct {
	store *bookingStore
}

func (r *storeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.nextID++
	created := *booking
	created.ID = r.store.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.store.bookings = append(r.store.bookings, &created)
	return &created, nil
}

type storeConflictFinder struct {
	store *bookingStore
}

func (f *storeConflictFinder) FindForMaster(_ context.Context, masterID int64, date time.Time, candidate domain.TimeInterval) ([]domain.ConflictEntry, error) {
	matching := make([]*domain.Booking, 0)
	for _, b := range f.store.bookings {
		if b.MasterID == masterID && b.BookingDate.Equal(date) {
			matching = append(matching, b)
		}
	}
	return domain.FindOverlapping(candidate, matching, domain.RolePrimary), nil
}

type storeTxManager struct {
	store *bookingStore
}

func (m *storeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type recordingAssignmentRepo struct {
	mu          sync.Mutex
	assignments []*domain.AssistantAssignment
	err         error
}

func (r *recordingAssignmentRepo) Create(_ context.Context, assignment *domain.AssistantAssignment) (*domain.AssistantAssignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *assignment
	created.ID = int64(len(r.assignments) + 1)
	r.assignments = append(r.assignments, &created)
	return &created, nil
}

type fakeConfigRepo struct {
	config *domain.LocationConfig
	err    error
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64) (*domain.LocationConfig, error) {
	return f.config, f.err
}

type scriptedConflictFinder struct {
	conflicts map[int64][]domain.ConflictEntry
	err       error
}

func (f *scriptedConflictFinder) FindForMaster(_ context.Context, masterID int64, _ time.Time, _ domain.TimeInterval) ([]domain.ConflictEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.conflicts[masterID], nil
}

type fakeRosterClient struct {
	masters  map[int64]*rosterservice.Master
	hours    *rosterservice.WorkingHours
	hoursErr error
}

func (f *fakeRosterClient) GetMaster(_ context.Context, masterID int64) (*rosterservice.Master, error) {
	master, ok := f.masters[masterID]
	if !ok {
		return nil, rosterservice.ErrMasterNotFound
	}
	return master, nil
}

func (f *fakeRosterClient) GetWorkingHoursWithGracefulDegradation(_ context.Context, _ int64, _ time.Time) (*rosterservice.WorkingHours, error) {
	return f.hours, f.hoursErr
}

type fakeClientClient struct {
	profile *clientservice.Profile
	err     error
}

func (f *fakeClientClient) GetProfileWithGracefulDegradation(_ context.Context, _ int64) (*clientservice.Profile, error) {
	return f.profile, f.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	store      *bookingStore
	assignment *recordingAssignmentRepo
	config     *fakeConfigRepo
	conflicts  *scriptedConflictFinder
	roster     *fakeRosterClient
	client     *fakeClientClient
	uc         *UseCase
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		store:      &bookingStore{},
		assignment: &recordingAssignmentRepo{},
		config:     &fakeConfigRepo{err: configRepo.ErrConfigNotFound},
		conflicts:  &scriptedConflictFinder{conflicts: make(map[int64][]domain.ConflictEntry)},
		roster: &fakeRosterClient{
			masters: map[int64]*rosterservice.Master{
				5: {ID: 5, LocationID: 1, IsActive: true},
				7: {ID: 7, LocationID: 1, IsActive: true},
			},
			hours: &rosterservice.WorkingHours{
				Intervals: []rosterservice.ShiftInterval{{StartTime: "09:00", EndTime: "17:00"}},
			},
		},
		client: &fakeClientClient{profile: &clientservice.Profile{ID: 3, Name: "Анна", Phone: "+70000000001"}},
	}

	env.uc = NewUseCase(
		&storeBookingRepo{store: env.store},
		env.assignment,
		env.config,
		env.conflicts,
		env.roster,
		env.client,
		passthroughTxManager{},
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTimeProvider{now: now}

	return env
}

func validRequest() *Request {
	return &Request{
		ClientID:     3,
		MasterID:     5,
		ServiceID:    11,
		Date:         time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		ServiceName:  "Стрижка",
		ServicePrice: 1500,
	}
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	t.Run("creates booking with client snapshot", func(t *testing.T) {
		env := newTestEnv(now)

		resp, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, int64(1), resp.LocationID)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		require.NotNil(t, resp.ClientName)
		assert.Equal(t, "Анна", *resp.ClientName)
		require.NotNil(t, resp.ClientPhone)
	})

	t.Run("creates booking with assistants", func(t *testing.T) {
		env := newTestEnv(now)
		req := validRequest()
		req.AssistantIDs = []int64{7}

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, []int64{7}, resp.AssistantIDs)
		require.Len(t, env.assignment.assignments, 1)
		assert.Equal(t, resp.ID, env.assignment.assignments[0].BookingID)
		assert.Equal(t, int64(7), env.assignment.assignments[0].MasterID)
	})

	t.Run("master not found", func(t *testing.T) {
		env := newTestEnv(now)
		req := validRequest()
		req.MasterID = 99

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrMasterNotFound)
	})

	t.Run("master inactive", func(t *testing.T) {
		env := newTestEnv(now)
		env.roster.masters[5].IsActive = false

		_, err := env.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrMasterInactive)
	})

	t.Run("assistant not found", func(t *testing.T) {
		env := newTestEnv(now)
		req := validRequest()
		req.AssistantIDs = []int64{99}

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAssistantNotFound)
	})

	t.Run("inactive assistant is treated as not found", func(t *testing.T) {
		env := newTestEnv(now)
		env.roster.masters[7].IsActive = false
		req := validRequest()
		req.AssistantIDs = []int64{7}

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrAssistantNotFound)
	})

	t.Run("primary conflict rejects the booking", func(t *testing.T) {
		env := newTestEnv(now)
		env.conflicts.conflicts[5] = []domain.ConflictEntry{
			{BookingID: 42, Role: domain.RolePrimary},
		}

		_, err := env.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, env.store.bookings, "nothing should be written on conflict")
	})

	t.Run("assistant conflict carries role and booking", func(t *testing.T) {
		env := newTestEnv(now)
		busyInterval, err := domain.NewTimeInterval("10:30", "11:30")
		require.NoError(t, err)
		env.conflicts.conflicts[7] = []domain.ConflictEntry{
			{BookingID: 42, Interval: busyInterval, Role: domain.RoleAssistant},
		}
		req := validRequest()
		req.AssistantIDs = []int64{7}

		_, err = env.uc.Execute(context.Background(), req)

		var conflictErr *domain.AssistantConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, int64(7), conflictErr.MasterID)
		assert.Equal(t, int64(42), conflictErr.BookingID)
		assert.Equal(t, domain.RoleAssistant, conflictErr.Role)
		assert.Empty(t, env.store.bookings)
	})

	t.Run("interval outside working hours", func(t *testing.T) {
		env := newTestEnv(now)
		req := validRequest()
		req.StartTime = "18:00"
		req.EndTime = "19:00"

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("allowOutsideHours skips the working hours check", func(t *testing.T) {
		env := newTestEnv(now)
		req := validRequest()
		req.StartTime = "18:00"
		req.EndTime = "19:00"
		req.AllowOutsideHours = true

		_, err := env.uc.Execute(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("roster outage refuses the booking", func(t *testing.T) {
		env := newTestEnv(now)
		env.roster.hours = nil
		env.roster.hoursErr = rosterservice.ErrServiceDegraded

		_, err := env.uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrRosterUnavailable)
	})

	t.Run("client service outage books without snapshot", func(t *testing.T) {
		env := newTestEnv(now)
		env.client.profile = nil
		env.client.err = clientservice.ErrServiceDegraded

		resp, err := env.uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Nil(t, resp.ClientName)
		assert.Nil(t, resp.ClientPhone)
	})

	t.Run("unknown client books without snapshot", func(t *testing.T) {
		env := newTestEnv(now)
		env.client.profile = nil
		env.client.err = clientservice.ErrClientNotFound

		resp, err := env.uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Nil(t, resp.ClientName)
	})

	t.Run("too late to book today", func(t *testing.T) {
		env := newTestEnv(now)
		env.config.config = &domain.LocationConfig{
			SlotGranularityMinutes:  30,
			MinBookingNoticeMinutes: 180,
		}
		env.config.err = nil
		req := validRequest()
		req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("date beyond advance limit", func(t *testing.T) {
		env := newTestEnv(now)
		env.config.config = &domain.LocationConfig{
			SlotGranularityMinutes: 30,
			AdvanceBookingDays:     7,
		}
		env.config.err = nil
		req := validRequest()
		req.Date = now.AddDate(0, 0, 30)

		_, err := env.uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})
}

func TestExecuteValidation(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"end before start", func(req *Request) { req.StartTime, req.EndTime = "11:00", "10:00" }},
		{"zero-length interval", func(req *Request) { req.EndTime = req.StartTime }},
		{"missing service name", func(req *Request) { req.ServiceName = "" }},
		{"negative price", func(req *Request) { req.ServicePrice = -1 }},
		{"master as his own assistant", func(req *Request) { req.AssistantIDs = []int64{5} }},
		{"duplicate assistants", func(req *Request) { req.AssistantIDs = []int64{7, 7} }},
		{"too many assistants", func(req *Request) {
			req.AssistantIDs = []int64{101, 102, 103, 104, 105, 106}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(now)
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteConcurrent(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	t.Run("two requests for the same interval produce one booking", func(t *testing.T) {
		env := newTestEnv(now)
		// Детектор читает хранилище, транзакция держит его мьютекс:
		// проверка и вставка атомарны, как в сериализуемой транзакции
		env.uc.conflictFinder = &storeConflictFinder{store: env.store}
		env.uc.txManager = &storeTxManager{store: env.store}

		var wg sync.WaitGroup
		errs := make([]error, 2)

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = env.uc.Execute(context.Background(), validRequest())
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, ErrSlotNotAvailable)
			}
		}
		assert.Equal(t, 1, winners, "exactly one request should win the slot")
		assert.Len(t, env.store.bookings, 1)
	})

	t.Run("retry after rejection is rejected again", func(t *testing.T) {
		env := newTestEnv(now)
		env.uc.conflictFinder = &storeConflictFinder{store: env.store}
		env.uc.txManager = &storeTxManager{store: env.store}

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		_, err = env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		assert.Len(t, env.store.bookings, 1)
	})

	t.Run("adjacent interval still books", func(t *testing.T) {
		env := newTestEnv(now)
		env.uc.conflictFinder = &storeConflictFinder{store: env.store}
		env.uc.txManager = &storeTxManager{store: env.store}

		_, err := env.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.StartTime = "11:00"
		req.EndTime = "12:00"

		_, err = env.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Len(t, env.store.bookings, 2)
	})
}
