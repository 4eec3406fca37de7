package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/availability"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

// UseCase lists the start times a professional can take a service on a date
type UseCase struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	appointmentRepo  AppointmentRepository
	blockRepo        BlockedPeriodRepository
	hoursRepo        BusinessHoursRepository
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

func NewUseCase(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockedPeriodRepository,
	hoursRepo BusinessHoursRepository,
	timeProvider TimeProvider,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		blockRepo:        blockRepo,
		hoursRepo:        hoursRepo,
		timeProvider:     timeProvider,
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, service=%s, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	now := uc.timeProvider.Now()

	// 2. Load service
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	if !service.Active {
		return nil, ErrServiceNotFound
	}

	// 3. Load professional
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %w", ErrInternal, err)
	}
	if !professional.Active {
		return nil, ErrProfessionalNotFound
	}

	response := &Response{
		Date:            date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 4. Past dates have no slots
	if domain.IsDateInPast(date, now) {
		return response, nil
	}

	// 5. Business hours for the weekday
	schedule, err := uc.hoursRepo.Schedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to load business hours: %w", ErrInternal, err)
	}
	hours := schedule.ForDate(date)
	if !hours.IsOpen() {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		return response, nil
	}

	// 6. Appointments, durations and blocks for the day
	appointments, err := uc.appointmentRepo.ListForDay(ctx, req.ProfessionalID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
	}

	durations, err := uc.serviceRepo.Durations(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load service durations: %v", err)
		return nil, fmt.Errorf("%w: failed to load service durations: %w", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked periods: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked periods: %w", ErrInternal, err)
	}

	// 7. Generate and drop the times already gone today
	day := &availability.Day{
		Date:             date,
		ProfessionalID:   req.ProfessionalID,
		Hours:            hours,
		Appointments:     appointments,
		ServiceDurations: durations,
		Blocks:           blocks,
	}
	slots := availability.GenerateSlots(day, service.DurationMinutes)

	if domain.SameDay(date, now) {
		slots = availability.NotBefore(slots, now.Hour()*60+now.Minute()+uc.minNoticeMinutes)
	}

	response.Slots = slots
	uc.logger.Info("GetAvailableSlots: %d slots for professional=%s on %s",
		len(slots), req.ProfessionalID, date.Format(domain.DateFormat))

	return response, nil
}
