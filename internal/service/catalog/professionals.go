package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	professionalRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/professional"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog/models"
)

// ListProfessionals returns professionals ordered by name. When serviceID is
// set only active professionals whose specialties match the service category
// are returned.
func (s *Service) ListProfessionals(ctx context.Context, serviceID *uuid.UUID, includeInactive bool) (*models.ProfessionalListResponse, error) {
	var svc *domain.Service
	if serviceID != nil {
		var err error
		if svc, err = s.getService(ctx, "ListProfessionals", *serviceID); err != nil {
			return nil, err
		}
		includeInactive = false
	}

	professionals, err := s.professionalRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	if svc != nil {
		matching := professionals[:0]
		for _, p := range professionals {
			if p.CanPerform(svc) {
				matching = append(matching, p)
			}
		}
		professionals = matching
		s.logger.Info("ListProfessionals: %d professionals perform category=%s", len(professionals), svc.Category)
	}

	return models.FromDomainProfessionalList(professionals), nil
}

func (s *Service) CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("CreateProfessional: name=%s, specialties=%v", req.Name, req.Specialties)

	p, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("CreateProfessional: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.professionalRepo.Create(ctx, p)
	if err != nil {
		s.logger.Error("CreateProfessional: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProfessional - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessional(created), nil
}

func (s *Service) UpdateProfessional(ctx context.Context, id uuid.UUID, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("UpdateProfessional: id=%s", id)

	p, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateProfessional: failed to get professional: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfessional - failed to get professional: %v", ErrInternal, err)
	}

	if err := req.ApplyTo(p); err != nil {
		s.logger.Warn("UpdateProfessional: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.professionalRepo.Update(ctx, p); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateProfessional: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateProfessional - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessional(p), nil
}
