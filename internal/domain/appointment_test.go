package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusScheduled, StatusInProgress, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusInProgress, false},
		{StatusConfirmed, StatusScheduled, false},
		{StatusInProgress, StatusCompleted, false},
		{StatusInProgress, StatusConfirmed, false},
		{StatusInProgress, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_Terminal(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: StatusCancelled}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusScheduled}).IsTerminal())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
}

func TestParseAppointmentStatus(t *testing.T) {
	s, ok := ParseAppointmentStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, s)

	_, ok = ParseAppointmentStatus("no_show")
	assert.False(t, ok)
}
