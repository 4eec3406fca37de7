package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/clock"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/logger"
)

type mockProfessionalRepo struct{ mock.Mock }

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Professional)
	return p, args.Error(1)
}

type mockBlockRepo struct{ mock.Mock }

func (m *mockBlockRepo) List(ctx context.Context, filter domain.BlockedPeriodFilter) ([]*domain.BlockedPeriod, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.BlockedPeriod)
	return b, args.Error(1)
}

type mockHoursRepo struct{ mock.Mock }

func (m *mockHoursRepo) Schedule(ctx context.Context) (domain.WeeklySchedule, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(domain.WeeklySchedule)
	return s, args.Error(1)
}

// Saturday afternoon
var now = time.Date(2026, 10, 17, 14, 0, 0, 0, time.UTC)

func newUseCase(professionals *mockProfessionalRepo, blocks *mockBlockRepo, hours *mockHoursRepo) *UseCase {
	return NewUseCase(professionals, blocks, hours, clock.NewMockClock(now), 30, logger.Nop())
}

func TestExecute_SkipsClosedAndBlockedDays(t *testing.T) {
	professionals, blocks, hours := new(mockProfessionalRepo), new(mockBlockRepo), new(mockHoursRepo)
	p := &domain.Professional{ID: uuid.New(), Active: true}

	professionals.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	hours.On("Schedule", mock.Anything).Return(domain.DefaultWeeklySchedule(), nil)
	blocks.On("List", mock.Anything, mock.MatchedBy(func(f domain.BlockedPeriodFilter) bool {
		return f.AllDayOnly &&
			f.ProfessionalID != nil && *f.ProfessionalID == p.ID &&
			f.StartDate.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate.Equal(time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC))
	})).Return([]*domain.BlockedPeriod{
		{Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), AllDay: true},
	}, nil)

	resp, err := newUseCase(professionals, blocks, hours).Execute(context.Background(), &Request{ProfessionalID: p.ID, Days: 7})
	require.NoError(t, err)

	got := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		got[i] = d.Format(domain.DateFormat)
	}
	assert.Equal(t, []string{"2026-10-19", "2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24"}, got)
	blocks.AssertExpectations(t)
}

func TestExecute_DefaultWindow(t *testing.T) {
	professionals, blocks, hours := new(mockProfessionalRepo), new(mockBlockRepo), new(mockHoursRepo)
	p := &domain.Professional{ID: uuid.New(), Active: true}

	professionals.On("GetByID", mock.Anything, p.ID).Return(p, nil)
	hours.On("Schedule", mock.Anything).Return(domain.DefaultWeeklySchedule(), nil)
	blocks.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := newUseCase(professionals, blocks, hours).Execute(context.Background(), &Request{ProfessionalID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, "2026-11-16", resp.To.Format(domain.DateFormat))
	for _, d := range resp.Dates {
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.True(t, d.After(now))
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Run("professional not found", func(t *testing.T) {
		professionals := new(mockProfessionalRepo)
		id := uuid.New()
		professionals.On("GetByID", mock.Anything, id).Return(nil, professionalRepo.ErrProfessionalNotFound)

		_, err := newUseCase(professionals, new(mockBlockRepo), new(mockHoursRepo)).
			Execute(context.Background(), &Request{ProfessionalID: id})
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("inactive professional", func(t *testing.T) {
		professionals := new(mockProfessionalRepo)
		p := &domain.Professional{ID: uuid.New()}
		professionals.On("GetByID", mock.Anything, p.ID).Return(p, nil)

		_, err := newUseCase(professionals, new(mockBlockRepo), new(mockHoursRepo)).
			Execute(context.Background(), &Request{ProfessionalID: p.ID})
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("window too large", func(t *testing.T) {
		_, err := newUseCase(new(mockProfessionalRepo), new(mockBlockRepo), new(mockHoursRepo)).
			Execute(context.Background(), &Request{ProfessionalID: uuid.New(), Days: domain.MaxPublicBookingDays + 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing professional", func(t *testing.T) {
		_, err := newUseCase(new(mockProfessionalRepo), new(mockBlockRepo), new(mockHoursRepo)).
			Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
