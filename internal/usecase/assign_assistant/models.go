package assign_assistant

import "time"

// Request модель запроса на назначение ассистента
type Request struct {
	BookingID   int64 // ID бронирования
	AssistantID int64 // ID мастера-ассистента
}

// Response модель ответа с созданным назначением
type Response struct {
	AssignmentID int64     // ID назначения
	BookingID    int64     // ID бронирования
	AssistantID  int64     // ID мастера-ассистента
	CreatedAt    time.Time // Время создания
}
