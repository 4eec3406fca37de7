package business_hours

import "errors"

var (
	// ErrBusinessHoursNotFound is returned when a weekday has no row
	ErrBusinessHoursNotFound = errors.New("business_hours.repository: business hours not found")

	ErrBuildQuery = errors.New("business_hours.repository: failed to build query")
	ErrExecQuery  = errors.New("business_hours.repository: failed to execute query")
	ErrScanRow    = errors.New("business_hours.repository: failed to scan row")
)
