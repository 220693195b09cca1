package get_client_bookings

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/internal/service/bookings/models"
)

// BookingResponse HTTP модель одного бронирования в списке
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
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse HTTP модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceResponse конвертирует сервисную модель списка в HTTP response
func FromServiceResponse(list *models.BookingListResponse) *BookingListResponse {
	result := make([]BookingResponse, len(list.Bookings))
	for i, b := range list.Bookings {
		result[i] = BookingResponse{
			ID:           b.ID,
			LocationID:   b.LocationID,
			MasterID:     b.MasterID,
			ClientID:     b.ClientID,
			ServiceID:    b.ServiceID,
			BookingDate:  b.BookingDate.Format(domain.DateFormat),
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			ServiceName:  b.ServiceName,
			ServicePrice: b.ServicePrice,
			Notes:        b.Notes,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    list.Total,
	}
}
