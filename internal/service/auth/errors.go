package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrUserInactive       = errors.New("auth: user is inactive")
	ErrInvalidInput       = errors.New("auth: invalid input")
	ErrInternal           = errors.New("auth: internal error")
)
