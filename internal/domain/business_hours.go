package domain

import (
	"time"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// BusinessHours is the opening window for one weekday. The same policy feeds
// the staff calendar and the public booking flow.
type BusinessHours struct {
	DayOfWeek time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Active    bool
	UpdatedAt time.Time
}

// IsOpen returns true if the salon takes bookings on this day
func (h BusinessHours) IsOpen() bool {
	return h.Active && !h.OpenTime.IsZero() && !h.CloseTime.IsZero() && h.OpenTime.IsBefore(h.CloseTime)
}

// WeeklySchedule is the business-hours policy indexed by weekday
type WeeklySchedule map[time.Weekday]BusinessHours

// ForDate returns the hours for the weekday of date. Missing days are closed.
func (s WeeklySchedule) ForDate(date time.Time) BusinessHours {
	if h, ok := s[date.Weekday()]; ok {
		return h
	}
	return BusinessHours{DayOfWeek: date.Weekday()}
}

// NewWeeklySchedule indexes rows by weekday
func NewWeeklySchedule(rows []*BusinessHours) WeeklySchedule {
	schedule := make(WeeklySchedule, len(rows))
	for _, h := range rows {
		schedule[h.DayOfWeek] = *h
	}
	return schedule
}

// DefaultWeeklySchedule is used until business hours are configured:
// Monday to Friday 09:00-18:00, Saturday 09:00-16:00, Sunday closed.
func DefaultWeeklySchedule() WeeklySchedule {
	schedule := WeeklySchedule{
		time.Sunday:   {DayOfWeek: time.Sunday},
		time.Saturday: {DayOfWeek: time.Saturday, OpenTime: "09:00", CloseTime: "16:00", Active: true},
	}
	for d := time.Monday; d <= time.Friday; d++ {
		schedule[d] = BusinessHours{DayOfWeek: d, OpenTime: "09:00", CloseTime: "18:00", Active: true}
	}
	return schedule
}
