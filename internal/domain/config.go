package domain

import "time"

// LocationConfig represents the scheduling configuration for a salon location
// Supports hierarchical configuration:
// 1. Service at location (location_id, service_id)
// 2. Location-wide (location_id, NULL)
type LocationConfig struct {
	ID                      int64
	LocationID              int64
	ServiceID               *int64 // NULL = config for all services at the location
	SlotGranularityMinutes  int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsLocationWide returns true if this configuration applies to every service
func (c *LocationConfig) IsLocationWide() bool {
	return c.ServiceID == nil
}

// IsServiceSpecific returns true if this configuration is for a specific service
func (c *LocationConfig) IsServiceSpecific() bool {
	return c.ServiceID != nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// bookings can be made
func (c *LocationConfig) HasAdvanceBookingLimit() bool {
	return c.AdvanceBookingDays > 0
}

// DefaultLocationConfig возвращает конфигурацию с дефолтными значениями
// Используется, когда для локации конфигурация не задана
func DefaultLocationConfig() *LocationConfig {
	return &LocationConfig{
		SlotGranularityMinutes:  DefaultSlotGranularityMinutes,
		AdvanceBookingDays:      DefaultAdvanceBookingDays,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}
