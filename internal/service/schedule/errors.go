package schedule

import "errors"

var (
	ErrBlockedPeriodNotFound = errors.New("blocked period not found")

	// ErrProfessionalNotFound is returned when a block references an unknown professional
	ErrProfessionalNotFound = errors.New("professional not found")

	ErrInvalidInput = errors.New("invalid input data")

	ErrInternal = errors.New("service: internal error")
)
