package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/availability"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/ptr"
)

// UseCase lists the upcoming dates on which a professional can be booked:
// the salon is open and no all-day block covers the professional.
type UseCase struct {
	professionalRepo ProfessionalRepository
	blockRepo        BlockedPeriodRepository
	hoursRepo        BusinessHoursRepository
	timeProvider     TimeProvider
	defaultDays      int
	logger           Logger
}

func NewUseCase(
	professionalRepo ProfessionalRepository,
	blockRepo BlockedPeriodRepository,
	hoursRepo BusinessHoursRepository,
	timeProvider TimeProvider,
	defaultDays int,
	logger Logger,
) *UseCase {
	if defaultDays <= 0 {
		defaultDays = domain.DefaultPublicBookingDays
	}
	return &UseCase{
		professionalRepo: professionalRepo,
		blockRepo:        blockRepo,
		hoursRepo:        hoursRepo,
		timeProvider:     timeProvider,
		defaultDays:      defaultDays,
		logger:           logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: professional=%s, days=%d", req.ProfessionalID, req.Days)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}

	// 2. Professional must exist and be active
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableDates: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %w", ErrInternal, err)
	}
	if !professional.Active {
		return nil, ErrProfessionalNotFound
	}

	// 3. Window starts tomorrow
	today := domain.DateOnly(uc.timeProvider.Now())
	from := today.AddDate(0, 0, 1)
	to := today.AddDate(0, 0, days)

	// 4. Business hours and all-day blocks inside the window
	schedule, err := uc.hoursRepo.Schedule(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to load business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to load business hours: %w", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.List(ctx, domain.BlockedPeriodFilter{
		StartDate:      ptr.Ptr(from),
		EndDate:        ptr.Ptr(to),
		ProfessionalID: ptr.Ptr(req.ProfessionalID),
		AllDayOnly:     true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list blocked periods: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked periods: %w", ErrInternal, err)
	}

	// 5. Walk the window
	dates := availability.AvailableDates(today, days, req.ProfessionalID, schedule, blocks)

	uc.logger.Info("GetAvailableDates: %d of %d days open for professional=%s", len(dates), days, req.ProfessionalID)

	return &Response{
		ProfessionalID: req.ProfessionalID,
		From:           from,
		To:             to,
		Dates:          dates,
	}, nil
}
