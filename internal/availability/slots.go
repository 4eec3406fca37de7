package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// Day is everything needed to answer availability questions for one
// professional on one date.
type Day struct {
	Date             time.Time
	ProfessionalID   uuid.UUID
	Hours            domain.BusinessHours
	Appointments     []*domain.Appointment
	ServiceDurations map[uuid.UUID]int
	Blocks           []*domain.BlockedPeriod
}

// IsAvailable combines the conflict and blackout checks for a start time.
func (d *Day) IsAvailable(start types.TimeString, durationMinutes int) bool {
	candidate := NewInterval(start, durationMinutes)
	if HasConflict(candidate, d.ProfessionalID, d.Date, d.Appointments, d.ServiceDurations) {
		return false
	}
	return !IsBlocked(candidate, d.Date, d.ProfessionalID, d.Blocks)
}

// WithinHours reports whether start is one of the grid times of the day.
func (d *Day) WithinHours(start types.TimeString) bool {
	for _, slot := range Grid(d.Hours, domain.SlotGranularityMinutes) {
		if slot.Equal(start) {
			return true
		}
	}
	return false
}

// Grid enumerates start times from open (inclusive) while the start is
// before close, stepping by granularity. A service may run past closing.
// A closed day yields an empty grid.
func Grid(hours domain.BusinessHours, granularityMinutes int) []types.TimeString {
	if !hours.IsOpen() || granularityMinutes <= 0 {
		return []types.TimeString{}
	}

	open := hours.OpenTime.Minutes()
	closing := hours.CloseTime.Minutes()

	grid := make([]types.TimeString, 0, (closing-open)/granularityMinutes+1)
	for m := open; m < closing; m += granularityMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		grid = append(grid, ts)
	}
	return grid
}

// GenerateSlots returns the available start times for a service of the given
// duration, in strictly increasing order.
func GenerateSlots(d *Day, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	for _, start := range Grid(d.Hours, domain.SlotGranularityMinutes) {
		if d.IsAvailable(start, durationMinutes) {
			slots = append(slots, start)
		}
	}
	return slots
}

// NotBefore drops slots starting before minStart. Used to hide times that
// have already passed today.
func NotBefore(slots []types.TimeString, minStart int) []types.TimeString {
	out := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.Minutes() >= minStart {
			out = append(out, s)
		}
	}
	return out
}

// AvailableDates lists up to days calendar dates starting the day after from
// on which the salon is open and no all-day block covers the professional.
func AvailableDates(
	from time.Time,
	days int,
	professionalID uuid.UUID,
	schedule domain.WeeklySchedule,
	blocks []*domain.BlockedPeriod,
) []time.Time {
	dates := make([]time.Time, 0, days)
	start := domain.DateOnly(from)
	for i := 1; i <= days; i++ {
		date := start.AddDate(0, 0, i)
		hours := schedule.ForDate(date)
		if !hours.IsOpen() {
			continue
		}
		if IsDayBlocked(date, professionalID, blocks) {
			continue
		}
		dates = append(dates, date)
	}
	return dates
}
