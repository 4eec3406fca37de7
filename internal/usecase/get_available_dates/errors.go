package get_available_dates

import "errors"

var (
	// ErrProfessionalNotFound is returned when the professional does not exist or is inactive
	ErrProfessionalNotFound = errors.New("get_available_dates: professional not found")

	ErrInvalidInput = errors.New("get_available_dates: invalid input data")
	ErrInternal     = errors.New("get_available_dates: internal error")
)
