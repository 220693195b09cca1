package create_booking

import "errors"

var (
	// ErrMasterNotFound возвращается, когда ведущий мастер не найден в RosterService
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrMasterInactive возвращается, когда мастер деактивирован в ростере
	ErrMasterInactive = errors.New("create_booking: master is inactive")

	// ErrAssistantNotFound возвращается, когда мастер-ассистент не найден в RosterService
	ErrAssistantNotFound = errors.New("create_booking: assistant not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда бронирование нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrOutsideWorkingHours возвращается, когда интервал не покрыт рабочими часами мастера
	// и запрос не разрешил запись вне смены
	ErrOutsideWorkingHours = errors.New("create_booking: interval is outside working hours")

	// ErrRosterUnavailable возвращается, когда RosterService недоступен, а без рабочих
	// часов проверку вне смены выполнить нельзя - запись вслепую не производится
	ErrRosterUnavailable = errors.New("create_booking: roster service unavailable")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятостью ведущего мастера
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
