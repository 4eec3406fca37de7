package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

func (m *mockServiceRepo) Durations(ctx context.Context) (map[uuid.UUID]int, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(map[uuid.UUID]int)
	return d, args.Error(1)
}

type mockProfessionalRepo struct{ mock.Mock }

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Professional)
	return p, args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) ListForDay(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	args := m.Called(ctx, professionalID, date)
	a, _ := args.Get(0).([]*domain.Appointment)
	return a, args.Error(1)
}

type mockBlockRepo struct{ mock.Mock }

func (m *mockBlockRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedPeriod, error) {
	args := m.Called(ctx, date)
	b, _ := args.Get(0).([]*domain.BlockedPeriod)
	return b, args.Error(1)
}

type mockHoursRepo struct{ mock.Mock }

func (m *mockHoursRepo) Schedule(ctx context.Context) (domain.WeeklySchedule, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(domain.WeeklySchedule)
	return s, args.Error(1)
}
