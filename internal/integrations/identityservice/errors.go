package identityservice

import "errors"

var (
	// ErrInvalidCredentials is returned when the service rejects the username or password
	ErrInvalidCredentials = errors.New("identityservice client: invalid credentials")

	// ErrUserInactive is returned for a disabled account
	ErrUserInactive = errors.New("identityservice client: user inactive")

	// ErrInternal is returned when the request could not be built or sent
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse is returned for unexpected status codes or bodies
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
