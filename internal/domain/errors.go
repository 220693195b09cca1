package domain

import "errors"

var (
	// ErrInvalidInterval возвращается при нарушении инварианта start < end
	// или выходе интервала за границы суток
	ErrInvalidInterval = errors.New("domain: invalid time interval")
)
