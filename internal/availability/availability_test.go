package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/ptr"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var (
	day      = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) // Monday
	otherDay = day.AddDate(0, 0, 1)
)

func appt(professionalID, serviceID uuid.UUID, date time.Time, at string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
		Time:           types.TimeString(at),
		Status:         status,
	}
}

func partialBlock(date time.Time, from, to string, professionalID *uuid.UUID) *domain.BlockedPeriod {
	return &domain.BlockedPeriod{
		Date:           date,
		StartTime:      ptr.Ptr(types.TimeString(from)),
		EndTime:        ptr.Ptr(types.TimeString(to)),
		ProfessionalID: professionalID,
	}
}

func TestNewInterval_LengthEqualsDuration(t *testing.T) {
	for _, duration := range []int{15, 30, 45, 60, 90, 240} {
		for _, start := range []string{"00:00", "09:00", "13:30", "23:30"} {
			i := NewInterval(types.TimeString(start), duration)
			assert.Equal(t, duration, i.End-i.Start)
		}
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660}

	assert.False(t, base.Overlaps(Interval{Start: 540, End: 600}), "adjacent before")
	assert.False(t, base.Overlaps(Interval{Start: 660, End: 720}), "adjacent after")
	assert.True(t, base.Overlaps(Interval{Start: 659, End: 700}), "one minute overlap")
	assert.True(t, base.Overlaps(Interval{Start: 610, End: 620}), "contained")
	assert.True(t, base.Overlaps(Interval{Start: 500, End: 800}), "containing")
	assert.False(t, base.Overlaps(Interval{Start: 700, End: 800}), "disjoint")
}

func TestAppointmentDuration_Fallbacks(t *testing.T) {
	serviceID := uuid.New()
	a := &domain.Appointment{ServiceID: serviceID, Time: "10:00"}

	assert.Equal(t, 60, AppointmentDuration(a, nil), "missing service falls back to 60")
	assert.Equal(t, 45, AppointmentDuration(a, map[uuid.UUID]int{serviceID: 45}))

	a.DurationMinutes = 90
	assert.Equal(t, 90, AppointmentDuration(a, map[uuid.UUID]int{serviceID: 45}), "booked duration wins")
	assert.Equal(t, Interval{Start: 600, End: 690}, AppointmentInterval(a, nil))
}

func TestHasConflict_ExampleSixtyMinuteService(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	durations := map[uuid.UUID]int{s: 60}
	existing := []*domain.Appointment{appt(p, s, day, "10:00", domain.StatusScheduled)}

	assert.False(t, HasConflict(NewInterval("09:00", 60), p, day, existing, durations), "09:00 ends exactly at 10:00")
	assert.True(t, HasConflict(NewInterval("09:30", 60), p, day, existing, durations), "09:30 overlaps 10:00-10:30")
	assert.False(t, HasConflict(NewInterval("11:00", 60), p, day, existing, durations), "11:00 starts when it ends")
}

func TestHasConflict_CancelledNeverConflicts(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	existing := []*domain.Appointment{appt(p, s, day, "10:00", domain.StatusCancelled)}

	for m := 0; m < 24*60; m += 15 {
		start, _ := types.NewTimeStringFromMinutes(m)
		assert.False(t, HasConflict(NewInterval(start, 60), p, day, existing, nil))
	}
}

func TestHasConflict_IgnoresOtherProfessionalsAndDays(t *testing.T) {
	p, other, s := uuid.New(), uuid.New(), uuid.New()
	existing := []*domain.Appointment{
		appt(other, s, day, "10:00", domain.StatusConfirmed),
		appt(p, s, otherDay, "10:00", domain.StatusConfirmed),
	}

	assert.False(t, HasConflict(NewInterval("10:00", 60), p, day, existing, nil))
}

func TestHasConflict_UnknownServiceUsesDefaultDuration(t *testing.T) {
	p := uuid.New()
	existing := []*domain.Appointment{appt(p, uuid.New(), day, "10:00", domain.StatusScheduled)}

	assert.True(t, HasConflict(NewInterval("10:45", 30), p, day, existing, nil))
	assert.False(t, HasConflict(NewInterval("11:00", 30), p, day, existing, nil))
}

func TestIsBlocked(t *testing.T) {
	p, other := uuid.New(), uuid.New()
	candidate := NewInterval("10:00", 60)

	tests := []struct {
		name  string
		block *domain.BlockedPeriod
		want  bool
	}{
		{name: "global all day", block: &domain.BlockedPeriod{Date: day, AllDay: true}, want: true},
		{name: "own all day", block: &domain.BlockedPeriod{Date: day, AllDay: true, ProfessionalID: &p}, want: true},
		{name: "other professional all day", block: &domain.BlockedPeriod{Date: day, AllDay: true, ProfessionalID: &other}, want: false},
		{name: "other date", block: &domain.BlockedPeriod{Date: otherDay, AllDay: true}, want: false},
		{
			name:  "all day ignores times",
			block: &domain.BlockedPeriod{Date: day, AllDay: true, StartTime: ptr.Ptr(types.TimeString("15:00")), EndTime: ptr.Ptr(types.TimeString("16:00"))},
			want:  true,
		},
		{name: "partial overlap", block: partialBlock(day, "10:30", "12:00", nil), want: true},
		{name: "partial adjacent before", block: partialBlock(day, "08:00", "10:00", nil), want: false},
		{name: "partial adjacent after", block: partialBlock(day, "11:00", "12:00", &p), want: false},
		{name: "partial other professional", block: partialBlock(day, "10:00", "11:00", &other), want: false},
		{name: "start only is permissive", block: &domain.BlockedPeriod{Date: day, StartTime: ptr.Ptr(types.TimeString("10:00"))}, want: false},
		{name: "no times is permissive", block: &domain.BlockedPeriod{Date: day}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlocked(candidate, day, p, []*domain.BlockedPeriod{tt.block}))
		})
	}
}

func TestGenerateSlots_GlobalAllDayBlockClosesEveryone(t *testing.T) {
	blocks := []*domain.BlockedPeriod{{Date: day, AllDay: true}}

	for i := 0; i < 3; i++ {
		d := &Day{
			Date:           day,
			ProfessionalID: uuid.New(),
			Hours:          domain.DefaultWeeklySchedule().ForDate(day),
			Blocks:         blocks,
		}
		assert.Empty(t, GenerateSlots(d, 30))
	}
}

func TestGenerateSlots_StrictlyIncreasing(t *testing.T) {
	p, s := uuid.New(), uuid.New()
	d := &Day{
		Date:           day,
		ProfessionalID: p,
		Hours:          domain.BusinessHours{DayOfWeek: time.Monday, OpenTime: "09:00", CloseTime: "18:00", Active: true},
		Appointments: []*domain.Appointment{
			appt(p, s, day, "10:00", domain.StatusScheduled),
			appt(p, s, day, "14:30", domain.StatusConfirmed),
			appt(p, s, day, "16:00", domain.StatusCancelled),
		},
		ServiceDurations: map[uuid.UUID]int{s: 60},
		Blocks:           []*domain.BlockedPeriod{partialBlock(day, "12:00", "13:00", nil)},
	}

	slots := GenerateSlots(d, 60)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1].Minutes(), slots[i].Minutes())
	}
	assert.Equal(t, []types.TimeString{
		"09:00",
		"11:00",
		"13:00", "13:30",
		"15:30", "16:00", "16:30", "17:00", "17:30",
	}, slots)
}

func TestGrid(t *testing.T) {
	hours := domain.BusinessHours{OpenTime: "09:00", CloseTime: "11:00", Active: true}
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, Grid(hours, 30))

	assert.Empty(t, Grid(domain.BusinessHours{}, 30))
	assert.Empty(t, Grid(hours, 0))
}

func TestDay_WithinHours(t *testing.T) {
	d := &Day{Hours: domain.BusinessHours{OpenTime: "09:00", CloseTime: "18:00", Active: true}}

	assert.True(t, d.WithinHours("09:00"))
	assert.True(t, d.WithinHours("17:30"))
	assert.False(t, d.WithinHours("18:00"))
	assert.False(t, d.WithinHours("09:15"))
	assert.False(t, d.WithinHours("08:30"))
}

func TestNotBefore(t *testing.T) {
	slots := []types.TimeString{"09:00", "09:30", "10:00"}
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, NotBefore(slots, 9*60+30))
}

func TestAvailableDates(t *testing.T) {
	p, other := uuid.New(), uuid.New()
	from := time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC) // Saturday
	blocks := []*domain.BlockedPeriod{
		{Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), AllDay: true},
		{Date: time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC), AllDay: true, ProfessionalID: &p},
		{Date: time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC), AllDay: true, ProfessionalID: &other},
		partialBlock(time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC), "10:00", "11:00", nil),
	}

	dates := AvailableDates(from, 7, p, domain.DefaultWeeklySchedule(), blocks)

	got := make([]string, len(dates))
	for i, d := range dates {
		got[i] = d.Format(domain.DateFormat)
	}
	// 18th is Sunday, 20th has a global block, 21st is blocked for p only.
	assert.Equal(t, []string{"2026-10-19", "2026-10-22", "2026-10-23", "2026-10-24"}, got)
}
