package professional

import "errors"

var (
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrProfessionalInUse is returned when deleting a professional with appointments or sales
	ErrProfessionalInUse = errors.New("professional.repository: professional is referenced")

	ErrBuildQuery = errors.New("professional.repository: failed to build query")
	ErrExecQuery  = errors.New("professional.repository: failed to execute query")
	ErrScanRow    = errors.New("professional.repository: failed to scan row")
)
