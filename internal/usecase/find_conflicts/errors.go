package find_conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_conflicts: invalid input data")

	// ErrTooManyMasters возвращается при превышении лимита мастеров в одном запросе
	ErrTooManyMasters = errors.New("find_conflicts: too many masters in one request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_conflicts: internal error")
)
