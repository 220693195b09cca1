package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
	getAvailability "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/get_availability"
)

const (
	msgInvalidMasterID = "некорректный ID мастера"
	msgInvalidParams   = "некорректные параметры запроса"
	msgMasterNotFound  = "мастер не найден"
	msgInvalidDate     = "некорректная дата"
	msgDateTooFar      = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/masters/{masterId}/available-slots
// Query params: date (обязательно), granularity, serviceId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем masterId из URL
	vars := mux.Vars(r)
	masterIDStr := vars["masterId"]

	masterID, err := strconv.ParseInt(masterIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid master ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMasterID)
		return
	}

	query := r.URL.Query()

	// Собираем модель use case из параметров запроса
	useCaseReq, err := ToUseCaseRequest(masterID, query.Get("date"), query.Get("granularity"), query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /masters/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMasterNotFound):
			h.logger.Warn("GET /masters/{id}/available-slots - Master not found: master_id=%d", masterID)
			handlers.RespondNotFound(w, msgMasterNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid date: master_id=%d", masterID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /masters/{id}/available-slots - Date too far in future: master_id=%d", masterID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /masters/{id}/available-slots - Invalid input: master_id=%d, error=%v", masterID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /masters/{id}/available-slots - Failed to get availability: master_id=%d, error=%v",
				masterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /masters/{id}/available-slots - Availability retrieved: master_id=%d, slots=%d",
		masterID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
