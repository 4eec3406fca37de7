package create_booking

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is inactive
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrProfessionalNotFound is returned when the professional does not exist or is inactive
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrProfessionalCannotPerform is returned when the professional's specialties do not cover the service
	ErrProfessionalCannotPerform = errors.New("create_booking: professional does not perform this service")

	// ErrInvalidDate is returned for a date in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when a public booking is beyond the booking window
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrSalonClosed is returned when business hours mark the weekday as closed
	ErrSalonClosed = errors.New("create_booking: salon is closed on this date")

	// ErrInvalidTimeSlot is returned when the time is not on the slot grid of the day
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook is returned when a booking for today violates the minimum notice
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable is returned when the interval overlaps an appointment or a blocked period
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	ErrInvalidInput = errors.New("create_booking: invalid input data")
	ErrInternal     = errors.New("create_booking: internal error")
)
