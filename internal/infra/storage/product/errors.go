package product

import "errors"

var (
	ErrProductNotFound = errors.New("product.repository: product not found")

	// ErrInsufficientStock is returned when a decrement would take stock below zero
	ErrInsufficientStock = errors.New("product.repository: insufficient stock")

	// ErrBarcodeTaken is returned when another product uses the barcode
	ErrBarcodeTaken = errors.New("product.repository: barcode already registered")

	ErrBuildQuery = errors.New("product.repository: failed to build query")
	ErrExecQuery  = errors.New("product.repository: failed to execute query")
	ErrScanRow    = errors.New("product.repository: failed to scan row")
)
