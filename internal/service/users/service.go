package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	userRepo "github.com/rian23304/sistema-pdv-nail-designer/internal/infra/storage/user"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/users/models"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/password"
)

// Service manages staff accounts
type Service struct {
	repo   UserRepository
	logger Logger
}

func NewService(repo UserRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create adds a staff account. Only the owner may create accounts,
// regardless of the permission table.
func (s *Service) Create(ctx context.Context, actorRole domain.Role, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: username=%s, role=%s, by role=%s", req.Username, req.Role, actorRole)

	if actorRole != domain.RoleOwner {
		s.logger.Warn("Create: role=%s is not allowed to create users", actorRole)
		return nil, ErrForbidden
	}

	u, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.create(ctx, "Create", u, req.Password)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(created), nil
}

func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// EnsureOwner creates the first owner account when no users exist. It is a
// no-op once any account is present.
func (s *Service) EnsureOwner(ctx context.Context, username, name, pass string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureOwner - count users: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	req := &models.CreateUserRequest{Username: username, Name: name, Password: pass, Role: string(domain.RoleOwner)}
	u, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("%w: EnsureOwner - %v", ErrInvalidInput, err)
	}

	created, err := s.create(ctx, "EnsureOwner", u, pass)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	s.logger.Warn("EnsureOwner: bootstrapped owner account username=%s, change its password", created.Username)
	return nil
}

func (s *Service) create(ctx context.Context, op string, u *domain.User, pass string) (*domain.User, error) {
	hash, err := password.Hash(pass)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooShort) || errors.Is(err, password.ErrInvalidPassword) {
			return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, password.MinLength)
		}
		return nil, fmt.Errorf("%w: %s - hash password: %v", ErrInternal, op, err)
	}
	u.PasswordHash = hash

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("%s: username=%s already taken", op, u.Username)
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: created user id=%s", op, created.ID)
	return created, nil
}
