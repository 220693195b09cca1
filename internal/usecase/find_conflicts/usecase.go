package find_conflicts

import (
	"context"
	"fmt"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// UseCase use case для batch-проверки конфликтов: один кандидат против
// нескольких мастеров. Используется при подборе свободной бригады
type UseCase struct {
	conflictFinder ConflictFinder
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(conflictFinder ConflictFinder, logger Logger) *UseCase {
	return &UseCase{
		conflictFinder: conflictFinder,
		logger:         logger,
	}
}

// Execute выполняет use case batch-проверки конфликтов
// Операция только читает данные, блокировки не берутся: результат - снимок,
// гарантию отсутствия гонки даёт только транзакция создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindConflicts: %d masters, date=%s, interval=%s-%s",
		len(req.MasterIDs), req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindConflicts: validation failed: %v", err)
		return nil, err
	}

	candidate := domain.TimeInterval{Start: req.StartTime, End: req.EndTime}

	// 2. Проверяем каждого мастера в обеих ролях
	conflictsByMaster, err := uc.conflictFinder.FindForMasters(ctx, req.MasterIDs, req.Date, candidate)
	if err != nil {
		uc.logger.Error("FindConflicts: batch check failed: %v", err)
		return nil, fmt.Errorf("%w: batch check failed: %v", ErrInternal, err)
	}

	// 3. Собираем результат в порядке запроса, дубликаты ID схлопываются
	seen := make(map[int64]struct{}, len(req.MasterIDs))
	results := make([]MasterResult, 0, len(req.MasterIDs))

	for _, masterID := range req.MasterIDs {
		if _, ok := seen[masterID]; ok {
			continue
		}
		seen[masterID] = struct{}{}

		entries := conflictsByMaster[masterID]
		conflicts := make([]Conflict, 0, len(entries))
		for _, e := range entries {
			conflicts = append(conflicts, Conflict{
				BookingID: e.BookingID,
				StartTime: e.Interval.Start,
				EndTime:   e.Interval.End,
				Role:      string(e.Role),
			})
		}

		results = append(results, MasterResult{
			MasterID:    masterID,
			IsAvailable: len(conflicts) == 0,
			Conflicts:   conflicts,
		})
	}

	uc.logger.Info("FindConflicts: checked %d masters, date=%s", len(results), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Results:   results,
	}, nil
}
