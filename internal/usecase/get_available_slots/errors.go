package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is inactive
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrProfessionalNotFound is returned when the professional does not exist or is inactive
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
	ErrInternal     = errors.New("get_available_slots: internal error")
)
