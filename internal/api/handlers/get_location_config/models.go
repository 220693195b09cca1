package get_location_config

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/service/config/models"
)

// ConfigResponse HTTP модель одной конфигурации
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

// ConfigListResponse HTTP модель списка конфигураций
type ConfigListResponse struct {
	Configs []ConfigResponse `json:"configs"`
	Total   int              `json:"total"`
}

// FromServiceResponse конвертирует сервисную модель списка в HTTP response
func FromServiceResponse(list *models.ConfigListResponse) *ConfigListResponse {
	result := make([]ConfigResponse, len(list.Configs))
	for i, cfg := range list.Configs {
		result[i] = ConfigResponse{
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

	return &ConfigListResponse{
		Configs: result,
		Total:   list.Total,
	}
}
