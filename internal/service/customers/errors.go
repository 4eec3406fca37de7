package customers

import "errors"

var (
	ErrCustomerNotFound      = errors.New("service: customer not found")
	ErrCustomerAlreadyExists = errors.New("service: customer with this phone already exists")
	ErrInvalidInput          = errors.New("service: invalid input")
	ErrInternal              = errors.New("service: internal error")
)
