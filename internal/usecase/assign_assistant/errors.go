package assign_assistant

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("assign_assistant: booking not found")

	// ErrBookingNotActive возвращается, когда бронирование отменено или помечено no-show
	ErrBookingNotActive = errors.New("assign_assistant: booking is not active")

	// ErrAssistantNotFound возвращается, когда мастер-ассистент не найден в RosterService
	ErrAssistantNotFound = errors.New("assign_assistant: assistant not found")

	// ErrSameMasterAssistant возвращается при попытке назначить ведущего мастера
	// ассистентом на его же бронирование
	ErrSameMasterAssistant = errors.New("assign_assistant: lead master cannot be assigned as assistant")

	// ErrAlreadyAssigned возвращается, когда ассистент уже назначен на бронирование
	ErrAlreadyAssigned = errors.New("assign_assistant: assistant is already assigned")

	// ErrTooManyAssistants возвращается при превышении лимита ассистентов на бронирование
	ErrTooManyAssistants = errors.New("assign_assistant: too many assistants")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_assistant: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_assistant: internal error")
)
