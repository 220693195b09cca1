package unassign_assistant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
	unassignAssistant "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/unassign_assistant"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidAssistantID = "некорректный ID ассистента"
	msgBookingNotFound    = "бронирование не найдено"
	msgAssignmentNotFound = "ассистент не назначен на это бронирование"
)

type Handler struct {
	useCase UnassignAssistantUseCase
	logger  Logger
}

func NewHandler(useCase UnassignAssistantUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}/assistants/{assistantId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем параметры из URL
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/assistants/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	assistantID, err := strconv.ParseInt(vars["assistantId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/assistants/{id} - Invalid assistant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssistantID)
		return
	}

	// Вызываем use case
	err = h.useCase.Execute(r.Context(), &unassignAssistant.Request{
		BookingID:   bookingID,
		AssistantID: assistantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, unassignAssistant.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id}/assistants/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, unassignAssistant.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /bookings/{id}/assistants/{id} - Assignment not found: booking_id=%d, assistant_id=%d",
				bookingID, assistantID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, unassignAssistant.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id}/assistants/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/{id}/assistants/{id} - Failed to unassign: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/assistants/{id} - Assistant unassigned: booking_id=%d, assistant_id=%d",
		bookingID, assistantID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
