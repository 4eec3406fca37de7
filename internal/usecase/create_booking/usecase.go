package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/availability"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	appointmentRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/appointment"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
)

const (
	outcomeCreated  = "created"
	outcomeConflict = "conflict"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// UseCase books an appointment
type UseCase struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	customerRepo     CustomerRepository
	appointmentRepo  AppointmentRepository
	blockRepo        BlockedPeriodRepository
	hoursRepo        BusinessHoursRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	options          Options
	metrics          Metrics
	logger           Logger
}

func NewUseCase(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockedPeriodRepository,
	hoursRepo BusinessHoursRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	options Options,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		customerRepo:     customerRepo,
		appointmentRepo:  appointmentRepo,
		blockRepo:        blockRepo,
		hoursRepo:        hoursRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		options:          options,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute books the appointment. The customer is resolved before the
// transaction; the availability check and the insert run in one serializable
// transaction holding a per-(professional, date) advisory lock, so two
// overlapping requests cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.metrics.IncBooking(bookingOutcome(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: source=%s, professional=%s, service=%s, date=%s, time=%s",
		req.Source, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	now := uc.timeProvider.Now()
	phone := domain.NormalizePhone(req.CustomerPhone)
	name := strings.TrimSpace(req.CustomerName)

	maxDays := 0
	if req.Source == SourcePublic {
		maxDays = uc.options.PublicBookingDays
	}
	if err := validateDate(date, now, maxDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 2. Load service
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Load professional
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %w", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("CreateBooking: professional id=%s is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// Staff may book any professional; the public page only offers matching ones
	if req.Source == SourcePublic && !professional.CanPerform(service) {
		uc.logger.Warn("CreateBooking: professional id=%s cannot perform service id=%s", professional.ID, service.ID)
		return nil, ErrProfessionalCannotPerform
	}

	// 4. Resolve the customer outside the appointment transaction
	customer, err := uc.customerRepo.GetOrCreateByPhone(ctx, phone, name)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve customer phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: failed to resolve customer: %w", ErrInternal, err)
	}

	var created *domain.Appointment

	// 5. Check and insert under the professional's day lock
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Serialize bookings for this professional and date
		if err := uc.appointmentRepo.LockProfessionalDay(txCtx, professional.ID, date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock professional day: %v", err)
			return fmt.Errorf("%w: failed to lock professional day: %w", ErrInternal, err)
		}

		// 5.2. Business hours for the weekday
		schedule, err := uc.hoursRepo.Schedule(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load business hours: %v", err)
			return fmt.Errorf("%w: failed to load business hours: %w", ErrInternal, err)
		}
		hours := schedule.ForDate(date)
		if !hours.IsOpen() {
			uc.logger.Warn("CreateBooking: salon is closed on %s", date.Format(domain.DateFormat))
			return ErrSalonClosed
		}

		// 5.3. Re-read appointments (FOR UPDATE), durations and blocks
		appointments, err := uc.appointmentRepo.ListForDay(txCtx, professional.ID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
		}

		durations, err := uc.serviceRepo.Durations(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load service durations: %v", err)
			return fmt.Errorf("%w: failed to load service durations: %w", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.ListByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list blocked periods: %v", err)
			return fmt.Errorf("%w: failed to list blocked periods: %w", ErrInternal, err)
		}

		day := &availability.Day{
			Date:             date,
			ProfessionalID:   professional.ID,
			Hours:            hours,
			Appointments:     appointments,
			ServiceDurations: durations,
			Blocks:           blocks,
		}

		// 5.4. Time must be on the grid and far enough from now
		if !day.WithinHours(req.Time) {
			uc.logger.Warn("CreateBooking: time %s is outside business hours %s-%s", req.Time, hours.OpenTime, hours.CloseTime)
			return ErrInvalidTimeSlot
		}

		if err := validateNotice(date, req.Time, now, uc.options.MinNoticeMinutes); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 5.5. Conflict and blackout check
		if !day.IsAvailable(req.Time, service.DurationMinutes) {
			uc.logger.Warn("CreateBooking: slot %s %s is not available for professional=%s",
				date.Format(domain.DateFormat), req.Time, professional.ID)
			return ErrSlotNotAvailable
		}

		// 5.6. Insert with the service duration frozen on the appointment
		appointment := &domain.Appointment{
			CustomerID:      customer.ID,
			ProfessionalID:  professional.ID,
			ServiceID:       service.ID,
			Date:            date,
			Time:            req.Time,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: insert rejected by overlap constraint")
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created appointment id=%s for customer id=%s", created.ID, customer.ID)

	return &Response{
		ID:               created.ID,
		CustomerID:       customer.ID,
		CustomerName:     customer.Name,
		CustomerPhone:    customer.Phone,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		ServicePrice:     service.Price,
		Date:             created.Date,
		Time:             created.Time,
		DurationMinutes:  created.DurationMinutes,
		Status:           string(created.Status),
		Notes:            created.Notes,
		CreatedAt:        created.CreatedAt,
	}, nil
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, ErrSlotNotAvailable):
		return outcomeConflict
	case errors.Is(err, ErrInternal):
		return outcomeError
	default:
		return outcomeRejected
	}
}
