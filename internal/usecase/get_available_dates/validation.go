package get_available_dates

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}
	if req.Days < 0 || req.Days > domain.MaxPublicBookingDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxPublicBookingDays)
	}
	return nil
}
