package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	// Отменённые бронирования неизменяемы - повторная отмена невозможна
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotMarkNoShow возвращается, когда бронированию нельзя проставить no-show
	ErrCannotMarkNoShow = errors.New("booking cannot be marked as no-show")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
