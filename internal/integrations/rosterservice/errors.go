package rosterservice

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден в ростере
	ErrMasterNotFound = errors.New("rosterservice client: master not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("rosterservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("rosterservice client: invalid response")

	// ErrServiceDegraded возвращается при недоступности RosterService
	// Для чтения доступности вызывающая сторона трактует это как «нет свободных часов»
	ErrServiceDegraded = errors.New("rosterservice unavailable: graceful degradation applied")
)
