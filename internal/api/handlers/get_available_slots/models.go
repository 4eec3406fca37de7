package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	getAvailableSlots "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string    `json:"date"`
	ProfessionalID  uuid.UUID `json:"professionalId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	DurationMinutes int       `json:"durationMinutes"`
	Slots           []string  `json:"slots"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
