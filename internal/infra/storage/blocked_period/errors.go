package blocked_period

import "errors"

var (
	ErrBlockedPeriodNotFound = errors.New("blocked_period.repository: blocked period not found")

	ErrBuildQuery = errors.New("blocked_period.repository: failed to build query")
	ErrExecQuery  = errors.New("blocked_period.repository: failed to execute query")
	ErrScanRow    = errors.New("blocked_period.repository: failed to scan row")
)
