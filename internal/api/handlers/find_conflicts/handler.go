package find_conflicts

import (
	"errors"
	"net/http"

	"github.com/glamora-dev/GLM-SchedulingService/internal/api/handlers"
	findConflicts "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/find_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgTooManyMasters     = "слишком много мастеров в одном запросе"
)

type Handler struct {
	useCase FindConflictsUseCase
	logger  Logger
}

func NewHandler(useCase FindConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/conflicts/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /conflicts/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findConflicts.ErrTooManyMasters):
			h.logger.Warn("POST /conflicts/check - Too many masters: count=%d", len(req.MasterIDs))
			handlers.RespondBadRequest(w, msgTooManyMasters)

		case errors.Is(err, findConflicts.ErrInvalidInput):
			h.logger.Warn("POST /conflicts/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /conflicts/check - Failed to check conflicts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conflicts/check - Checked %d masters", len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
