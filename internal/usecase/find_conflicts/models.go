package find_conflicts

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// Request модель запроса на batch-проверку конфликтов
type Request struct {
	MasterIDs []int64          // ID мастеров для проверки
	Date      time.Time        // Дата кандидата
	StartTime types.TimeString // Время начала кандидата
	EndTime   types.TimeString // Время конца кандидата
}

// Response модель ответа с результатом проверки по каждому мастеру
type Response struct {
	Date      time.Time        // Дата кандидата
	StartTime types.TimeString // Время начала кандидата
	EndTime   types.TimeString // Время конца кандидата
	Results   []MasterResult   // Результат по каждому мастеру в порядке запроса
}

// MasterResult результат проверки одного мастера
type MasterResult struct {
	MasterID    int64      // ID мастера
	IsAvailable bool       // true, если конфликтов нет
	Conflicts   []Conflict // Найденные конфликты (пустой список - мастер свободен)
}

// Conflict описание одного конфликта
type Conflict struct {
	BookingID int64            // ID конфликтующего бронирования
	StartTime types.TimeString // Начало конфликтующего интервала
	EndTime   types.TimeString // Конец конфликтующего интервала
	Role      string           // Роль мастера в конфликтующем бронировании: primary | assistant
}
