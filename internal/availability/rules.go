package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

// HasConflict reports whether candidate overlaps a non-cancelled appointment
// of the professional on date. Appointments of other professionals or other
// days are ignored, so the full list may be passed.
func HasConflict(
	candidate Interval,
	professionalID uuid.UUID,
	date time.Time,
	appointments []*domain.Appointment,
	serviceDurations map[uuid.UUID]int,
) bool {
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		if a.ProfessionalID != professionalID || !domain.SameDay(a.Date, date) {
			continue
		}
		if candidate.Overlaps(AppointmentInterval(a, serviceDurations)) {
			return true
		}
	}
	return false
}

// IsBlocked reports whether a blocked period excludes candidate.
// Blocks for other dates or other professionals are skipped; an all-day block
// excludes everything; a partial block needs both ends to restrict anything.
func IsBlocked(
	candidate Interval,
	date time.Time,
	professionalID uuid.UUID,
	blocks []*domain.BlockedPeriod,
) bool {
	for _, b := range blocks {
		if !domain.SameDay(b.Date, date) {
			continue
		}
		if !b.AppliesTo(professionalID) {
			continue
		}
		if b.AllDay {
			return true
		}
		if !b.HasTimeRange() {
			continue
		}
		blocked := Interval{Start: b.StartTime.Minutes(), End: b.EndTime.Minutes()}
		if candidate.Overlaps(blocked) {
			return true
		}
	}
	return false
}

// IsDayBlocked returns true if an all-day block covers the professional on date.
func IsDayBlocked(date time.Time, professionalID uuid.UUID, blocks []*domain.BlockedPeriod) bool {
	for _, b := range blocks {
		if b.AllDay && domain.SameDay(b.Date, date) && b.AppliesTo(professionalID) {
			return true
		}
	}
	return false
}
