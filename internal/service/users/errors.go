package users

import "errors"

var (
	ErrForbidden         = errors.New("service: only the owner can manage users")
	ErrUserAlreadyExists = errors.New("service: username already taken")
	ErrInvalidInput      = errors.New("service: invalid input")
	ErrInternal          = errors.New("service: internal error")
)
