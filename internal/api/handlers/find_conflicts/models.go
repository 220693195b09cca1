package find_conflicts

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	findConflicts "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/find_conflicts"
	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	MasterIDs []int64 `json:"masterIds"`
	Date      string  `json:"date"`      // "2026-09-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "11:30"
}

// ConflictsResponse HTTP response model
type ConflictsResponse struct {
	Date      string              `json:"date"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Results   []MasterResultEntry `json:"results"`
}

// MasterResultEntry результат проверки одного мастера
type MasterResultEntry struct {
	MasterID    int64           `json:"masterId"`
	IsAvailable bool            `json:"isAvailable"`
	Conflicts   []ConflictEntry `json:"conflicts"`
}

// ConflictEntry описание одного конфликта
type ConflictEntry struct {
	BookingID int64  `json:"bookingId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Role      string `json:"role"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() (*findConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &findConflicts.Request{
		MasterIDs: r.MasterIDs,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findConflicts.Response) *ConflictsResponse {
	results := make([]MasterResultEntry, len(resp.Results))
	for i, mr := range resp.Results {
		conflicts := make([]ConflictEntry, len(mr.Conflicts))
		for j, c := range mr.Conflicts {
			conflicts[j] = ConflictEntry{
				BookingID: c.BookingID,
				StartTime: c.StartTime.String(),
				EndTime:   c.EndTime.String(),
				Role:      c.Role,
			}
		}
		results[i] = MasterResultEntry{
			MasterID:    mr.MasterID,
			IsAvailable: mr.IsAvailable,
			Conflicts:   conflicts,
		}
	}

	return &ConflictsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Results:   results,
	}
}
