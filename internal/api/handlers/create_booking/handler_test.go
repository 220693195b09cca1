package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	createBooking "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	response *createBooking.Response
	err      error
	gotReq   *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"clientId": 3,
	"masterId": 5,
	"serviceId": 11,
	"bookingDate": "2026-09-15",
	"startTime": "10:00",
	"endTime": "11:00",
	"serviceName": "Стрижка",
	"servicePrice": 1500
}`

func doRequest(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)
	return recorder
}

func TestHandle(t *testing.T) {
	t.Run("created booking returns 201", func(t *testing.T) {
		uc := &fakeUseCase{response: &createBooking.Response{
			ID:          1,
			LocationID:  2,
			MasterID:    5,
			ClientID:    3,
			ServiceID:   11,
			BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      string(domain.StatusConfirmed),
		}}

		recorder := doRequest(uc, validBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-09-15", resp.BookingDate)
		assert.Equal(t, "confirmed", resp.Status)
		assert.NotNil(t, resp.AssistantIDs)

		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(5), uc.gotReq.MasterID)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{}, `{"clientId":`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("bad date format returns 400 with date message", func(t *testing.T) {
		body := strings.Replace(validBody, "2026-09-15", "15.09.2026", 1)

		recorder := doRequest(&fakeUseCase{}, body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "YYYY-MM-DD")
	})

	t.Run("bad time format returns 400 with time message", func(t *testing.T) {
		body := strings.Replace(validBody, `"10:00"`, `"10am"`, 1)

		recorder := doRequest(&fakeUseCase{}, body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "HH:MM")
	})

	t.Run("busy slot returns 409", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{err: createBooking.ErrSlotNotAvailable}, validBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("assistant conflict returns 409 with structured body", func(t *testing.T) {
		interval, err := domain.NewTimeInterval("10:30", "11:30")
		require.NoError(t, err)
		uc := &fakeUseCase{err: &domain.AssistantConflictError{
			MasterID:  7,
			BookingID: 42,
			Interval:  interval,
			Role:      domain.RoleAssistant,
		}}

		recorder := doRequest(uc, validBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var resp ConflictResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.MasterID)
		assert.Equal(t, int64(42), resp.BookingID)
		assert.Equal(t, "10:30", resp.StartTime)
		assert.Equal(t, "assistant", resp.Role)
	})

	t.Run("unknown master returns 404", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{err: createBooking.ErrMasterNotFound}, validBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("outside working hours returns 422", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{err: createBooking.ErrOutsideWorkingHours}, validBody)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("roster outage returns 503", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{err: createBooking.ErrRosterUnavailable}, validBody)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("unexpected error returns 500", func(t *testing.T) {
		recorder := doRequest(&fakeUseCase{err: createBooking.ErrInternal}, validBody)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
