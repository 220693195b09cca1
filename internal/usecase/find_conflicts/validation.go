package find_conflicts

import (
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.MasterIDs) == 0 {
		return fmt.Errorf("%w: masterIDs is required", ErrInvalidInput)
	}

	if len(req.MasterIDs) > domain.MaxConflictProbeMasters {
		return fmt.Errorf("%w: at most %d masters per request", ErrTooManyMasters, domain.MaxConflictProbeMasters)
	}

	for _, id := range req.MasterIDs {
		if id <= 0 {
			return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if _, err := domain.NewTimeInterval(req.StartTime, req.EndTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
