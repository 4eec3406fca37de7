// Package availability decides whether a (date, time, professional, service)
// combination is bookable. Everything here is a pure function of its inputs:
// callers load appointments, blocked periods and business hours and pass them in.
package availability

import (
	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// Interval is a half-open [Start, End) range in minutes since midnight.
// End may exceed 24*60 when a service runs past midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds [start, start+duration).
func NewInterval(start types.TimeString, durationMinutes int) Interval {
	s := start.Minutes()
	return Interval{Start: s, End: s + durationMinutes}
}

// Overlaps is the standard half-open test: touching intervals do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// AppointmentInterval returns the time an existing appointment occupies.
// Duration comes from the appointment itself, then from the service
// durations map, and falls back to DefaultServiceDurationMinutes.
func AppointmentInterval(a *domain.Appointment, serviceDurations map[uuid.UUID]int) Interval {
	return NewInterval(a.Time, AppointmentDuration(a, serviceDurations))
}

// AppointmentDuration resolves how many minutes an appointment occupies.
func AppointmentDuration(a *domain.Appointment, serviceDurations map[uuid.UUID]int) int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	if d, ok := serviceDurations[a.ServiceID]; ok && d > 0 {
		return d
	}
	return domain.DefaultServiceDurationMinutes
}
