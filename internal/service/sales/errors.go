package sales

import "errors"

var (
	ErrSaleNotFound = errors.New("sales: sale not found")
	ErrInvalidInput = errors.New("sales: invalid input data")
	ErrInternal     = errors.New("sales: internal error")
)
