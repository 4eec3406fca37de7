package user

import "errors"

var (
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrUsernameTaken is returned when the username already exists
	ErrUsernameTaken = errors.New("user.repository: username already taken")

	ErrBuildQuery = errors.New("user.repository: failed to build query")
	ErrExecQuery  = errors.New("user.repository: failed to execute query")
	ErrScanRow    = errors.New("user.repository: failed to scan row")
)
