package get_availability

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов мастера
type Request struct {
	MasterID           int64     // ID мастера
	Date               time.Time // Дата для получения слотов (без времени)
	GranularityMinutes *int      // Шаг сетки слотов (опционально, иначе из конфигурации)
	ServiceID          *int64    // ID услуги для иерархии конфигурации (опционально)
}

// Response модель ответа со слотами и свободными окнами
type Response struct {
	MasterID           int64        // ID мастера
	Date               time.Time    // Дата, на которую запрашивались слоты
	GranularityMinutes int          // Фактически использованный шаг сетки
	Slots              []Slot       // Сетка слотов в хронологическом порядке
	FreeWindows        []FreeWindow // Непрерывные свободные окна внутри смен
}

// Slot модель временного слота
type Slot struct {
	StartTime   types.TimeString // Время начала слота
	EndTime     types.TimeString // Время конца слота
	IsAvailable bool             // Свободен ли слот (нет пересечений с занятостью)
}

// FreeWindow непрерывный свободный интервал внутри рабочей смены
// В отличие от слотов не привязан к сетке: показывает реальные границы
type FreeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
