package update_location_config

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/service/config/models"
)

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	ServiceID               *int64 `json:"serviceId,omitempty"`
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
}

// ConfigResponse HTTP response model
type ConfigResponse struct {
	ID                      int64  `json:"id"`
	LocationID              int64  `json:"locationId"`
	ServiceID               *int64 `json:"serviceId,omitempty"`
	SlotGranularityMinutes  int    `json:"slotGranularityMinutes"`
	AdvanceBookingDays      int    `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int    `json:"minBookingNoticeMinutes"`
	CreatedAt               string `json:"createdAt"`
	UpdatedAt               string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в сервисную модель
func (r *UpdateConfigRequest) ToServiceRequest(locationID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		LocationID:              locationID,
		ServiceID:               r.ServiceID,
		SlotGranularityMinutes:  r.SlotGranularityMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}

// FromServiceResponse конвертирует сервисную модель в HTTP response
func FromServiceResponse(cfg *models.ConfigResponse) *ConfigResponse {
	return &ConfigResponse{
		ID:                      cfg.ID,
		LocationID:              cfg.LocationID,
		ServiceID:               cfg.ServiceID,
		SlotGranularityMinutes:  cfg.SlotGranularityMinutes,
		AdvanceBookingDays:      cfg.AdvanceBookingDays,
		MinBookingNoticeMinutes: cfg.MinBookingNoticeMinutes,
		CreatedAt:               cfg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               cfg.UpdatedAt.Format(time.RFC3339),
	}
}
