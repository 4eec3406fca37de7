package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidRole      = errors.New("role must be owner, manager, employee or seller")
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToDomain validates everything except the password, which is hashed by the
// service.
func (r *CreateUserRequest) ToDomain() (*domain.User, error) {
	u := &domain.User{
		Username: strings.ToLower(strings.TrimSpace(r.Username)),
		Name:     strings.TrimSpace(r.Name),
		Role:     domain.Role(r.Role),
		Active:   true,
	}
	if u.Username == "" {
		return nil, ErrUsernameRequired
	}
	if u.Name == "" {
		return nil, ErrNameRequired
	}
	if !u.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	return u, nil
}

type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	Name        string      `json:"name"`
	Role        domain.Role `json:"role"`
	Active      bool        `json:"active"`
	LastLoginAt *time.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, *FromDomainUser(u))
	}
	return resp
}
