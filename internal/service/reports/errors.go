package reports

import "errors"

var (
	ErrProfessionalNotFound = errors.New("service: professional not found")
	ErrInvalidInput         = errors.New("service: invalid input")
	ErrInternal             = errors.New("service: internal error")
)
