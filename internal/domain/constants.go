package domain

// Scheduling defaults
const (
	// DefaultServiceDurationMinutes is assumed for an appointment whose
	// service can no longer be found.
	DefaultServiceDurationMinutes = 60

	SlotGranularityMinutes         = 30
	DefaultMinBookingNoticeMinutes = 0
	DefaultPublicBookingDays       = 30
	MaxPublicBookingDays           = 90
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxReasonLength       = 500
	MinServiceDuration    = 5
	MaxServiceDuration    = 480
	MaxDiscountPercentage = 100
	MinPhoneDigits        = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveAppointmentStatuses never block the calendar
var InactiveAppointmentStatuses = []AppointmentStatus{
	StatusCancelled,
}
