package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	createBooking "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotAvailable   = "выбранный интервал пересекается с занятостью мастера"
	msgAssistantConflict  = "ассистент занят в выбранном интервале"
	msgMasterNotFound     = "мастер не найден"
	msgMasterInactive     = "мастер деактивирован"
	msgAssistantNotFound  = "ассистент не найден"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для записи на этот интервал"
	msgOutsideHours       = "интервал вне рабочих часов мастера"
	msgRosterUnavailable  = "сервис расписания смен временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		// Определяем, что именно не разобралось - дата или время
		if _, dateErr := time.Parse(domain.DateFormat, req.BookingDate); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт ассистента несёт структурированные данные - отдаем их в теле 409
		var assistantConflict *domain.AssistantConflictError
		if errors.As(err, &assistantConflict) {
			h.logger.Warn("POST /bookings - Assistant conflict: assistant=%d, booking=%d",
				assistantConflict.MasterID, assistantConflict.BookingID)
			handlers.RespondJSON(w, http.StatusConflict, FromAssistantConflict(msgAssistantConflict, assistantConflict))
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%d, master_id=%d", req.ClientID, req.MasterID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrMasterNotFound):
			h.logger.Warn("POST /bookings - Master not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, createBooking.ErrMasterInactive):
			h.logger.Warn("POST /bookings - Master inactive: master_id=%d", req.MasterID)
			handlers.RespondBadRequest(w, msgMasterInactive)

		case errors.Is(err, createBooking.ErrAssistantNotFound):
			h.logger.Warn("POST /bookings - Assistant not found: master_id=%d", req.MasterID)
			handlers.RespondNotFound(w, msgAssistantNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: client_id=%d, master_id=%d", req.ClientID, req.MasterID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: client_id=%d, master_id=%d", req.ClientID, req.MasterID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client_id=%d, master_id=%d", req.ClientID, req.MasterID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: client_id=%d, master_id=%d", req.ClientID, req.MasterID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOutsideHours)

		case errors.Is(err, createBooking.ErrRosterUnavailable):
			h.logger.Error("POST /bookings - Roster unavailable: master_id=%d, error=%v", req.MasterID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRosterUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, master_id=%d, error=%v",
				req.ClientID, req.MasterID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, master_id=%d, error=%v",
				req.ClientID, req.MasterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, master_id=%d",
		result.ID, req.ClientID, req.MasterID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
