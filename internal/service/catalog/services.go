package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	serviceRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/services"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog/models"
)

func (s *Service) ListServices(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	svc, err := s.getService(ctx, "GetService", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainService(svc), nil
}

func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%s, category=%s, duration=%d", req.Name, req.Category, req.DurationMinutes)

	svc, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created id=%s", created.ID)
	return models.FromDomainService(created), nil
}

func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%s", id)

	svc, err := s.getService(ctx, "UpdateService", id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyTo(svc); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.saveService(ctx, "UpdateService", svc); err != nil {
		return nil, err
	}
	return models.FromDomainService(svc), nil
}

// ToggleService flips the active flag. Inactive services stay attached to
// past appointments but disappear from the public catalog.
func (s *Service) ToggleService(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	svc, err := s.getService(ctx, "ToggleService", id)
	if err != nil {
		return nil, err
	}

	svc.Active = !svc.Active
	if err := s.saveService(ctx, "ToggleService", svc); err != nil {
		return nil, err
	}

	s.logger.Info("ToggleService: id=%s, active=%t", id, svc.Active)
	return models.FromDomainService(svc), nil
}

func (s *Service) getService(ctx context.Context, op string, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%s not found", op, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: failed to get service: %v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to get service: %v", ErrInternal, op, err)
	}
	return svc, nil
}

func (s *Service) saveService(ctx context.Context, op string, svc *domain.Service) error {
	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}
