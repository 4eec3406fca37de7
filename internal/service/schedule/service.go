package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	blockRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/blocked_period"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/schedule/models"
)

// Service manages the salon calendar: blocked periods and weekly business hours
type Service struct {
	blockRepo        BlockedPeriodRepository
	hoursRepo        BusinessHoursRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

func NewService(
	blockRepo BlockedPeriodRepository,
	hoursRepo BusinessHoursRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:        blockRepo,
		hoursRepo:        hoursRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

func (s *Service) ListBlockedPeriods(ctx context.Context, req *models.ListBlockedPeriodsRequest) (*models.BlockedPeriodListResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		return nil, fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.List(ctx, domain.BlockedPeriodFilter{
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		s.logger.Error("ListBlockedPeriods: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedPeriods - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBlockedPeriods: fetched %d blocked periods", len(blocks))
	return models.FromDomainBlockedPeriodList(blocks), nil
}

func (s *Service) CreateBlockedPeriod(ctx context.Context, req *models.CreateBlockedPeriodRequest) (*models.BlockedPeriodResponse, error) {
	s.logger.Info("CreateBlockedPeriod: date=%s, allDay=%t, professional=%v", req.Date, req.AllDay, req.ProfessionalID)

	block, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateBlockedPeriod: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if block.ProfessionalID != nil {
		if _, err := s.professionalRepo.GetByID(ctx, *block.ProfessionalID); err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				s.logger.Warn("CreateBlockedPeriod: professional id=%s not found", *block.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			s.logger.Error("CreateBlockedPeriod: failed to get professional: %v", err)
			return nil, fmt.Errorf("%w: CreateBlockedPeriod - failed to get professional: %v", ErrInternal, err)
		}
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlockedPeriod: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedPeriod - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedPeriod: created id=%s", created.ID)
	return models.FromDomainBlockedPeriod(created), nil
}

func (s *Service) DeleteBlockedPeriod(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteBlockedPeriod: id=%s", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockedPeriodNotFound) {
			s.logger.Warn("DeleteBlockedPeriod: id=%s not found", id)
			return ErrBlockedPeriodNotFound
		}
		s.logger.Error("DeleteBlockedPeriod: repository error: %v", err)
		return fmt.Errorf("%w: DeleteBlockedPeriod - repository error: %v", ErrInternal, err)
	}
	return nil
}

// GetBusinessHours returns all seven weekdays. Defaults apply until the owner
// saves the first row.
func (s *Service) GetBusinessHours(ctx context.Context) (*models.BusinessHoursListResponse, error) {
	schedule, err := s.hoursRepo.Schedule(ctx)
	if err != nil {
		s.logger.Error("GetBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}
	return models.FromWeeklySchedule(schedule), nil
}

func (s *Service) UpdateBusinessHours(ctx context.Context, dayOfWeek int, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateBusinessHours: day=%d, open=%s, close=%s, active=%t",
		dayOfWeek, req.OpenTime, req.CloseTime, req.Active)

	hours, err := req.ToDomain(dayOfWeek)
	if err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.hoursRepo.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("UpdateBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBusinessHours(*saved)
	return &resp, nil
}
