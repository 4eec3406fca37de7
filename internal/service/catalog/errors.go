package catalog

import "errors"

var (
	ErrServiceNotFound      = errors.New("service: service not found")
	ErrProfessionalNotFound = errors.New("service: professional not found")
	ErrProductNotFound      = errors.New("service: product not found")
	ErrBarcodeTaken         = errors.New("service: barcode already registered")
	ErrInvalidInput         = errors.New("service: invalid input")
	ErrInternal             = errors.New("service: internal error")
)
