package users

import (
	"context"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, actorRole domain.Role, req *models.CreateUserRequest) (*models.UserResponse, error)
	List(ctx context.Context) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
