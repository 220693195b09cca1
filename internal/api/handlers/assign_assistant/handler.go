package assign_assistant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	assignAssistant "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/assign_assistant"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingNotActive   = "бронирование не активно"
	msgAssistantNotFound  = "ассистент не найден"
	msgSameMaster         = "ведущий мастер не может быть ассистентом своего бронирования"
	msgAlreadyAssigned    = "ассистент уже назначен на это бронирование"
	msgTooManyAssistants  = "превышен лимит ассистентов на бронирование"
	msgAssistantConflict  = "ассистент занят в интервале бронирования"
)

type Handler struct {
	useCase AssignAssistantUseCase
	logger  Logger
}

func NewHandler(useCase AssignAssistantUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/assistants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/assistants - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignAssistantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/assistants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &assignAssistant.Request{
		BookingID:   bookingID,
		AssistantID: req.AssistantID,
	})
	if err != nil {
		// Конфликт ассистента несёт структурированные данные - отдаем их в теле 409
		var assistantConflict *domain.AssistantConflictError
		if errors.As(err, &assistantConflict) {
			h.logger.Warn("POST /bookings/{id}/assistants - Assistant conflict: assistant=%d, conflicting_booking=%d",
				assistantConflict.MasterID, assistantConflict.BookingID)
			handlers.RespondJSON(w, http.StatusConflict, FromAssistantConflict(msgAssistantConflict, assistantConflict))
			return
		}

		switch {
		case errors.Is(err, assignAssistant.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/assistants - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignAssistant.ErrBookingNotActive):
			h.logger.Warn("POST /bookings/{id}/assistants - Booking not active: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingNotActive)

		case errors.Is(err, assignAssistant.ErrAssistantNotFound):
			h.logger.Warn("POST /bookings/{id}/assistants - Assistant not found: assistant_id=%d", req.AssistantID)
			handlers.RespondNotFound(w, msgAssistantNotFound)

		case errors.Is(err, assignAssistant.ErrSameMasterAssistant):
			h.logger.Warn("POST /bookings/{id}/assistants - Lead master as assistant: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgSameMaster)

		case errors.Is(err, assignAssistant.ErrAlreadyAssigned):
			h.logger.Warn("POST /bookings/{id}/assistants - Already assigned: booking_id=%d, assistant_id=%d",
				bookingID, req.AssistantID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAssigned)

		case errors.Is(err, assignAssistant.ErrTooManyAssistants):
			h.logger.Warn("POST /bookings/{id}/assistants - Too many assistants: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgTooManyAssistants)

		case errors.Is(err, assignAssistant.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/assistants - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{id}/assistants - Failed to assign assistant: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/assistants - Assistant assigned: booking_id=%d, assistant_id=%d",
		bookingID, req.AssistantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
