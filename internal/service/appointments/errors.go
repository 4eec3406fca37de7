package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition is returned when the lifecycle does not allow the status change
	ErrInvalidTransition = errors.New("invalid appointment status transition")

	// ErrInvalidInput is returned for malformed filters or statuses
	ErrInvalidInput = errors.New("invalid input data")

	ErrInternal = errors.New("service: internal error")
)
