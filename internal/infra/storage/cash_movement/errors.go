package cash_movement

import "errors"

var (
	ErrBuildQuery = errors.New("cash_movement.repository: failed to build query")
	ErrExecQuery  = errors.New("cash_movement.repository: failed to execute query")
	ErrScanRow    = errors.New("cash_movement.repository: failed to scan row")
)
