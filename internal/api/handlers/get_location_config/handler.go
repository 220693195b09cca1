package get_location_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
)

const msgInvalidLocationID = "некорректный ID локации"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/config
// Пустой список не ошибка: для локации без конфигурации действуют дефолты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем locationId из URL
	vars := mux.Vars(r)
	locationIDStr := vars["locationId"]

	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/config - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	result, err := h.service.GetAllByLocation(r.Context(), locationID)
	if err != nil {
		h.logger.Error("GET /locations/{id}/config - Failed to get configs: location_id=%d, error=%v",
			locationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations/{id}/config - Configs retrieved successfully: location_id=%d, count=%d",
		locationID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
