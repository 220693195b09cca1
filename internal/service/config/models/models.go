package models

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// UpdateConfigRequest запрос на создание/обновление конфигурации локации
type UpdateConfigRequest struct {
	LocationID              int64
	ServiceID               *int64
	SlotGranularityMinutes  int
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
}

// ToDomain конвертирует запрос в доменную модель
func (r *UpdateConfigRequest) ToDomain() *domain.LocationConfig {
	return &domain.LocationConfig{
		LocationID:              r.LocationID,
		ServiceID:               r.ServiceID,
		SlotGranularityMinutes:  r.SlotGranularityMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}

// ConfigResponse конфигурация расписания локации
type ConfigResponse struct {
	ID                      int64
	LocationID              int64
	ServiceID               *int64
	SlotGranularityMinutes  int
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ConfigListResponse список конфигураций локации
type ConfigListResponse struct {
	Configs []*ConfigResponse
	Total   int
}

// FromDomainConfig конвертирует доменную конфигурацию в response-модель
func FromDomainConfig(cfg *domain.LocationConfig) *ConfigResponse {
	return &ConfigResponse{
		ID:                      cfg.ID,
		LocationID:              cfg.LocationID,
		ServiceID:               cfg.ServiceID,
		SlotGranularityMinutes:  cfg.SlotGranularityMinutes,
		AdvanceBookingDays:      cfg.AdvanceBookingDays,
		MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
		CreatedAt:               cfg.CreatedAt,
		UpdatedAt:               cfg.UpdatedAt,
	}
}

// FromDomainConfigList конвертирует список доменных конфигураций
func FromDomainConfigList(configs []*domain.LocationConfig) *ConfigListResponse {
	result := make([]*ConfigResponse, len(configs))
	for i, cfg := range configs {
		result[i] = FromDomainConfig(cfg)
	}
	return &ConfigListResponse{
		Configs: result,
		Total:   len(result),
	}
}
