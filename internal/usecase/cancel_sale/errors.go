package cancel_sale

import "errors"

var (
	ErrSaleNotFound = errors.New("cancel_sale: sale not found")

	// ErrSaleAlreadyCancelled is returned when the sale is not in the completed state
	ErrSaleAlreadyCancelled = errors.New("cancel_sale: sale already cancelled")

	ErrInvalidInput = errors.New("cancel_sale: invalid input data")
	ErrInternal     = errors.New("cancel_sale: internal error")
)
