package create_booking

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	createBooking "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/create_booking"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID          int64   `json:"clientId"`
	MasterID          int64   `json:"masterId"`
	ServiceID         int64   `json:"serviceId"`
	BookingDate       string  `json:"bookingDate"` // "2026-09-15"
	StartTime         string  `json:"startTime"`   // "10:00"
	EndTime           string  `json:"endTime"`     // "11:30"
	AssistantIDs      []int64 `json:"assistantIds,omitempty"`
	ServiceName       string  `json:"serviceName"`
	ServicePrice      float64 `json:"servicePrice"`
	AllowOutsideHours bool    `json:"allowOutsideHours,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

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
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ConflictResponse HTTP модель ответа 409 при конфликте ассистента
type ConflictResponse struct {
	Error     string `json:"error"`
	MasterID  int64  `json:"masterId"`
	BookingID int64  `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Role      string `json:"role"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим интервал
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:          r.ClientID,
		MasterID:          r.MasterID,
		ServiceID:         r.ServiceID,
		Date:              bookingDate,
		StartTime:         startTime,
		EndTime:           endTime,
		AssistantIDs:      r.AssistantIDs,
		ServiceName:       r.ServiceName,
		ServicePrice:      r.ServicePrice,
		AllowOutsideHours: r.AllowOutsideHours,
		Notes:             r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	assistantIDs := resp.AssistantIDs
	if assistantIDs == nil {
		assistantIDs = []int64{}
	}

	return &BookingResponse{
		ID:           resp.ID,
		LocationID:   resp.LocationID,
		MasterID:     resp.MasterID,
		ClientID:     resp.ClientID,
		ServiceID:    resp.ServiceID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		AssistantIDs: assistantIDs,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromAssistantConflict конвертирует доменную ошибку конфликта ассистента в HTTP модель
func FromAssistantConflict(message string, conflict *domain.AssistantConflictError) *ConflictResponse {
	return &ConflictResponse{
		Error:     message,
		MasterID:  conflict.MasterID,
		BookingID: conflict.BookingID,
		StartTime: conflict.Interval.Start.String(),
		EndTime:   conflict.Interval.End.String(),
		Role:      string(conflict.Role),
	}
}
