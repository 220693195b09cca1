package get_booking

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	LocationID   int64   `json:"locationId"`
	MasterID     int64   `json:"masterId"`
	ClientID     int64   `json:"clientId"`
	ServiceID    int64   `json:"serviceId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	AssistantIDs []int64 `json:"assistantIds"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует сервисную модель в HTTP response
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if b.CancelledAt != nil {
		formatted := b.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &BookingResponse{
		ID:                 b.ID,
		LocationID:         b.LocationID,
		MasterID:           b.MasterID,
		ClientID:           b.ClientID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             b.Status,
		AssistantIDs:       b.AssistantIDs,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		ClientName:         b.ClientName,
		ClientPhone:        b.ClientPhone,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}
