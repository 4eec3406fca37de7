package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	appointmentRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/appointment"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/appointments/models"
)

// Service reads appointments and moves them through their lifecycle
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

func NewService(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus applies a lifecycle transition: scheduled -> confirmed ->
// completed, or scheduled/confirmed -> cancelled. The row is locked for the
// read and the update is guarded by the status that was read.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s to status=%s", id, req.Status)

	next, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidStatus)
	}

	var updated *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if appointment.IsTerminal() {
			s.logger.Warn("UpdateStatus: appointment id=%s is already %s", id, appointment.Status)
			return fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, appointment.Status)
		}
		if !appointment.CanTransitionTo(next) {
			s.logger.Warn("UpdateStatus: appointment id=%s cannot go from %s to %s", id, appointment.Status, next)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, next)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, appointment.Status, next); err != nil {
			if errors.Is(err, appointmentRepo.ErrStatusChanged) {
				s.logger.Warn("UpdateStatus: appointment id=%s changed status concurrently", id)
				return fmt.Errorf("%w: status changed by another request", ErrInvalidTransition)
			}
			s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		appointment.Status = next
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, next)
	return models.FromDomainAppointment(updated), nil
}
