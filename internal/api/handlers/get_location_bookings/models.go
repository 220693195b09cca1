package get_location_bookings

import (
	"strconv"
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
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// BookingListResponse HTTP модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ToServiceRequest собирает сервисный запрос из path- и query-параметров
func ToServiceRequest(locationID int64, masterIDStr, statusStr, startDateStr, endDateStr, includeInactiveStr string) (*models.GetLocationBookingsRequest, error) {
	req := &models.GetLocationBookingsRequest{
		LocationID: locationID,
	}

	if masterIDStr != "" {
		masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.MasterID = &masterID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
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
			ClientName:   b.ClientName,
			ClientPhone:  b.ClientPhone,
			Notes:        b.Notes,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    list.Total,
	}
}
