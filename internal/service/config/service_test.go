package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/service/config/models"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/ptr"
)

type fakeConfigRepo struct {
	configs  []*domain.LocationConfig
	err      error
	upserted *domain.LocationConfig
}

func (f *fakeConfigRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64) (*domain.LocationConfig, error) {
	return nil, ErrConfigNotFound
}

func (f *fakeConfigRepo) GetAllByLocation(_ context.Context, _ int64) ([]*domain.LocationConfig, error) {
	return f.configs, f.err
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.LocationConfig) (*domain.LocationConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *cfg
	stored.ID = 1
	f.upserted = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		LocationID:              2,
		SlotGranularityMinutes:  15,
		AdvanceBookingDays:      14,
		MinBookingNoticeMinutes: 120,
	}
}

func TestGetAllByLocation(t *testing.T) {
	t.Run("returns configs", func(t *testing.T) {
		repo := &fakeConfigRepo{configs: []*domain.LocationConfig{
			{ID: 1, LocationID: 2, SlotGranularityMinutes: 30},
		}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetAllByLocation(context.Background(), 2)
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Total)
	})

	t.Run("location without configs gives an empty list", func(t *testing.T) {
		svc := NewService(&fakeConfigRepo{}, nopLogger{})

		resp, err := svc.GetAllByLocation(context.Background(), 2)
		require.NoError(t, err)

		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Configs)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("upserts a valid config", func(t *testing.T) {
		repo := &fakeConfigRepo{}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), validUpdateRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, 15, resp.SlotGranularityMinutes)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, int64(2), repo.upserted.LocationID)
	})

	t.Run("service-specific config keeps the serviceID", func(t *testing.T) {
		repo := &fakeConfigRepo{}
		svc := NewService(repo, nopLogger{})
		req := validUpdateRequest()
		req.ServiceID = ptr.Ptr(int64(11))

		resp, err := svc.Update(context.Background(), req)
		require.NoError(t, err)

		require.NotNil(t, resp.ServiceID)
		assert.Equal(t, int64(11), *resp.ServiceID)
	})

	tests := []struct {
		name   string
		mutate func(req *models.UpdateConfigRequest)
	}{
		{"non-positive location", func(req *models.UpdateConfigRequest) { req.LocationID = 0 }},
		{"granularity below minimum", func(req *models.UpdateConfigRequest) {
			req.SlotGranularityMinutes = domain.MinSlotGranularityMinutes - 1
		}},
		{"granularity above maximum", func(req *models.UpdateConfigRequest) {
			req.SlotGranularityMinutes = domain.MaxSlotGranularityMinutes + 1
		}},
		{"advance days above maximum", func(req *models.UpdateConfigRequest) {
			req.AdvanceBookingDays = domain.MaxAdvanceBookingDays + 1
		}},
		{"negative notice", func(req *models.UpdateConfigRequest) {
			req.MinBookingNoticeMinutes = -1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeConfigRepo{}
			svc := NewService(repo, nopLogger{})
			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
