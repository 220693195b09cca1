package create_booking

import (
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID  int64            // ID клиента
	MasterID  int64            // ID ведущего мастера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время конца (например, "11:30")

	AssistantIDs []int64 // ID мастеров-ассистентов (опционально)

	// Снимок данных услуги для истории: каталог услуг живёт вне сервиса,
	// поэтому название и цена приходят в запросе
	ServiceName  string
	ServicePrice float64

	// AllowOutsideHours отключает проверку попадания интервала в рабочие
	// часы мастера (ручная запись администратором вне смены)
	AllowOutsideHours bool

	Notes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	LocationID  int64            // ID локации (салона)
	MasterID    int64            // ID ведущего мастера
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца
	Status      string           // Статус бронирования

	AssistantIDs []int64 // ID назначенных ассистентов

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   *string // Имя клиента (снимок из ClientService)
	ClientPhone  *string // Телефон клиента (снимок из ClientService)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
