package unassign_assistant

// Request модель запроса на снятие ассистента с бронирования
type Request struct {
	BookingID   int64 // ID бронирования
	AssistantID int64 // ID мастера-ассистента
}
