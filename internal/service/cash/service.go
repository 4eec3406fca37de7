package cash

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/cash/models"
)

// Service runs the cash register: manual entries, the day listing and the
// daily summary.
type Service struct {
	repo         CashMovementRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewService(repo CashMovementRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (s *Service) CreateMovement(ctx context.Context, req *models.CreateMovementRequest, createdBy *uuid.UUID) (*models.MovementResponse, error) {
	s.logger.Info("CreateMovement: type=%s, category=%s, amount=%.2f", req.Type, req.Category, req.Amount)

	movement, err := req.ToDomain(createdBy, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("CreateMovement: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, movement)
	if err != nil {
		s.logger.Error("CreateMovement: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateMovement - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainMovement(created)
	return &resp, nil
}

// ListByDay returns the entries of a register day. An empty date means today.
func (s *Service) ListByDay(ctx context.Context, date string) (*models.MovementListResponse, error) {
	day, movements, err := s.loadDay(ctx, "ListByDay", date)
	if err != nil {
		return nil, err
	}
	return models.FromDomainMovementList(day, movements), nil
}

func (s *Service) DailySummary(ctx context.Context, date string) (*models.DailySummaryResponse, error) {
	day, movements, err := s.loadDay(ctx, "DailySummary", date)
	if err != nil {
		return nil, err
	}

	summary := &models.DailySummaryResponse{
		Date:            day.Format(domain.DateFormat),
		ByPaymentMethod: make(map[string]float64),
	}
	for _, m := range movements {
		switch m.Type {
		case domain.MovementIn:
			summary.TotalIn += m.Amount
		case domain.MovementOut:
			summary.TotalOut += m.Amount
		}
		if m.Type == domain.MovementIn && m.Category == domain.CategorySale {
			summary.SalesCount++
			if m.PaymentMethod != nil {
				summary.ByPaymentMethod[string(*m.PaymentMethod)] += m.Amount
			}
		}
	}

	summary.TotalIn = domain.RoundMoney(summary.TotalIn)
	summary.TotalOut = domain.RoundMoney(summary.TotalOut)
	summary.Balance = domain.RoundMoney(summary.TotalIn - summary.TotalOut)
	for method, total := range summary.ByPaymentMethod {
		summary.ByPaymentMethod[method] = domain.RoundMoney(total)
	}

	s.logger.Info("DailySummary: date=%s, in=%.2f, out=%.2f", summary.Date, summary.TotalIn, summary.TotalOut)
	return summary, nil
}

// loadDay resolves the register day in the salon's location and fetches its
// movements.
func (s *Service) loadDay(ctx context.Context, op, date string) (time.Time, []*domain.CashMovement, error) {
	now := s.timeProvider.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if date = strings.TrimSpace(date); date != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, date)
		}
		day = parsed
	}

	movements, err := s.repo.List(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return time.Time{}, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return day, movements, nil
}
