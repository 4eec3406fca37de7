package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotNotAvailable is returned when the database rejects an overlapping appointment
	ErrSlotNotAvailable = errors.New("appointment.repository: slot not available")

	// ErrStatusChanged is returned when the appointment is missing or no longer in the expected status
	ErrStatusChanged = errors.New("appointment.repository: status changed")

	// ErrInvalidReference is returned when customer, professional or service does not exist
	ErrInvalidReference = errors.New("appointment.repository: invalid reference")

	ErrBuildQuery = errors.New("appointment.repository: failed to build query")
	ErrExecQuery  = errors.New("appointment.repository: failed to execute query")
	ErrScanRow    = errors.New("appointment.repository: failed to scan row")
)
