package unassign_assistant

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("unassign_assistant: booking not found")

	// ErrAssignmentNotFound возвращается, когда ассистент не назначен на бронирование
	ErrAssignmentNotFound = errors.New("unassign_assistant: assistant is not assigned to this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("unassign_assistant: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("unassign_assistant: internal error")
)
