package sale

import "errors"

var (
	ErrSaleNotFound = errors.New("sale.repository: sale not found")

	// ErrSaleAlreadyCancelled is returned when cancelling a cancelled sale
	ErrSaleAlreadyCancelled = errors.New("sale.repository: sale already cancelled")

	ErrBuildQuery = errors.New("sale.repository: failed to build query")
	ErrExecQuery  = errors.New("sale.repository: failed to execute query")
	ErrScanRow    = errors.New("sale.repository: failed to scan row")
)
