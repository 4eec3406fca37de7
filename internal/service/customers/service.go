package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	customerRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/customer"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/customers/models"
)

type Service struct {
	repo   CustomerRepository
	logger Logger
}

func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns customers ordered by name. search matches the name or any
// part of the phone.
func (s *Service) List(ctx context.Context, search string) (*models.CustomerListResponse, error) {
	search = strings.TrimSpace(search)
	if looksLikePhone(search) {
		search = domain.NormalizePhone(search)
	}

	customers, err := s.repo.List(ctx, search)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.CustomerResponse, error) {
	c, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCustomer(c), nil
}

func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: name=%s", req.Name)

	c, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, customerRepo.ErrPhoneTaken) {
			s.logger.Warn("Create: phone=%s already registered", c.Phone)
			return nil, ErrCustomerAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created id=%s", created.ID)
	return models.FromDomainCustomer(created), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: id=%s", id)

	c, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(c); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, customerRepo.ErrPhoneTaken):
			return nil, ErrCustomerAlreadyExists
		case errors.Is(err, customerRepo.ErrCustomerNotFound):
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomer(c), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("%s: customer id=%s not found", op, id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("%s: failed to get customer: %v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to get customer: %v", ErrInternal, op, err)
	}
	return c, nil
}

// looksLikePhone reports whether a search term is a formatted phone number
// such as "(11) 99999-0000".
func looksLikePhone(s string) bool {
	if domain.PhoneDigits(s) == 0 {
		return false
	}
	return strings.Trim(s, "0123456789+()- ") == ""
}
