package config

import (
	"context"
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией расписания локаций
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// GetAllByLocation получает все конфигурации локации
// Пустой список не ошибка: для локации без конфигурации действуют дефолты
func (s *Service) GetAllByLocation(ctx context.Context, locationID int64) (*models.ConfigListResponse, error) {
	s.logger.Info("GetAllByLocation: fetching configs for location=%d", locationID)

	configs, err := s.configRepo.GetAllByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("GetAllByLocation: repository error for location=%d: %v", locationID, err)
		return nil, fmt.Errorf("%w: GetAllByLocation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfigList(configs), nil
}

// Update создает или обновляет конфигурацию локации
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for location=%d, service=%v", req.LocationID, req.ServiceID)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for location=%d: %v", req.LocationID, err)
		return nil, err
	}

	updated, err := s.configRepo.Upsert(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Update: repository error for location=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated config id=%d for location=%d", updated.ID, req.LocationID)
	return models.FromDomainConfig(updated), nil
}

// validateRequest проверяет границы значений конфигурации
func validateRequest(req *models.UpdateConfigRequest) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		req.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slotGranularityMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}
	if req.AdvanceBookingDays < domain.MinAdvanceBookingDays ||
		req.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	if req.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes ||
		req.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}
	return nil
}
