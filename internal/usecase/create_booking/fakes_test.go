package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
)

type fakeServices struct {
	services map[uuid.UUID]*domain.Service
}

func (f *fakeServices) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeServices) Durations(context.Context) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(f.services))
	for id, s := range f.services {
		out[id] = s.DurationMinutes
	}
	return out, nil
}

type fakeProfessionals struct {
	professionals map[uuid.UUID]*domain.Professional
}

func (f *fakeProfessionals) GetByID(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	p, ok := f.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}
	return p, nil
}

type fakeCustomers struct {
	mu      sync.Mutex
	byPhone map[string]*domain.Customer
	inTx    []bool
}

func (f *fakeCustomers) GetOrCreateByPhone(ctx context.Context, phone, name string) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inTx = append(f.inTx, ctx.Value(txKey{}) != nil)
	if c, ok := f.byPhone[phone]; ok {
		return c, nil
	}
	c := &domain.Customer{ID: uuid.New(), Name: name, Phone: phone}
	f.byPhone[phone] = c
	return c, nil
}

// fakeAppointments keeps rows in memory. LockProfessionalDay holds a mutex per
// (professional, date) until the surrounding fake transaction ends.
type fakeAppointments struct {
	mu        sync.Mutex
	rows      []*domain.Appointment
	dayLocks  map[string]*sync.Mutex
	createErr error
}

func (f *fakeAppointments) LockProfessionalDay(ctx context.Context, professionalID uuid.UUID, date time.Time) error {
	key := professionalID.String() + "/" + date.Format(domain.DateFormat)

	f.mu.Lock()
	l, ok := f.dayLocks[key]
	if !ok {
		l = &sync.Mutex{}
		f.dayLocks[key] = l
	}
	f.mu.Unlock()

	l.Lock()
	ctx.Value(txKey{}).(*fakeTxState).onEnd(l.Unlock)
	return nil
}

func (f *fakeAppointments) ListForDay(_ context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Appointment
	for _, a := range f.rows {
		if a.ProfessionalID == professionalID && domain.SameDay(a.Date, date) && a.IsActive() {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeAppointments) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeBlocks struct {
	blocks []*domain.BlockedPeriod
}

func (f *fakeBlocks) ListByDate(_ context.Context, date time.Time) ([]*domain.BlockedPeriod, error) {
	var out []*domain.BlockedPeriod
	for _, b := range f.blocks {
		if domain.SameDay(b.Date, date) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeHours struct {
	schedule domain.WeeklySchedule
}

func (f *fakeHours) Schedule(context.Context) (domain.WeeklySchedule, error) {
	return f.schedule, nil
}

type txKey struct{}

type fakeTxState struct {
	release []func()
}

func (s *fakeTxState) onEnd(fn func()) {
	s.release = append(s.release, fn)
}

// fakeTx hands fn a context marked as transactional and runs the release
// hooks registered during fn when it returns.
type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	state := &fakeTxState{}
	defer func() {
		for _, release := range state.release {
			release()
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, state))
}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *recordingMetrics) IncBooking(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}
