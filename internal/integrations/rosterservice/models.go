package rosterservice

import (
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// Master модель мастера из RosterService
type Master struct {
	ID          int64  `json:"id"`
	LocationID  int64  `json:"location_id"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

// ShiftInterval один интервал смены мастера
type ShiftInterval struct {
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// WorkingHours расписание мастера на дату: набор интервалов смен
// Пустой список означает, что мастер в этот день не работает
type WorkingHours struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Intervals []ShiftInterval `json:"intervals"`
}

// ToDomain конвертирует расписание в доменную модель с валидацией интервалов
func (w *WorkingHours) ToDomain() (domain.WorkingHours, error) {
	intervals := make([]domain.TimeInterval, 0, len(w.Intervals))

	for _, shift := range w.Intervals {
		start, err := types.NewTimeStringFromString(shift.StartTime)
		if err != nil {
			return domain.WorkingHours{}, fmt.Errorf("%w: invalid shift start %q: %v", ErrInvalidResponse, shift.StartTime, err)
		}
		end, err := types.NewTimeStringFromString(shift.EndTime)
		if err != nil {
			return domain.WorkingHours{}, fmt.Errorf("%w: invalid shift end %q: %v", ErrInvalidResponse, shift.EndTime, err)
		}

		interval, err := domain.NewTimeInterval(start, end)
		if err != nil {
			return domain.WorkingHours{}, fmt.Errorf("%w: invalid shift interval %s-%s: %v", ErrInvalidResponse, start, end, err)
		}

		intervals = append(intervals, interval)
	}

	return domain.WorkingHours{Intervals: intervals}, nil
}

// ErrorResponse модель ошибки от RosterService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
