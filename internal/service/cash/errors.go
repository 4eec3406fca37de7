package cash

import "errors"

var (
	ErrInvalidInput = errors.New("service: invalid input")
	ErrInternal     = errors.New("service: internal error")
)
