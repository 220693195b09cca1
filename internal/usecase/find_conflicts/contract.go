package find_conflicts

import (
	"context"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
)

// ConflictFinder интерфейс детектора конфликтов расписания
type ConflictFinder interface {
	// FindForMasters batch-проверка одного кандидата против нескольких мастеров
	FindForMasters(ctx context.Context, masterIDs []int64, date time.Time, candidate domain.TimeInterval) (map[int64][]domain.ConflictEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
