package assign_assistant

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	assignAssistant "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/assign_assistant"
)

// AssignAssistantRequest HTTP request model
type AssignAssistantRequest struct {
	AssistantID int64 `json:"assistantId"`
}

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	AssignmentID int64  `json:"assignmentId"`
	BookingID    int64  `json:"bookingId"`
	AssistantID  int64  `json:"assistantId"`
	CreatedAt    string `json:"createdAt"`
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignAssistant.Response) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID: resp.AssignmentID,
		BookingID:    resp.BookingID,
		AssistantID:  resp.AssistantID,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
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
