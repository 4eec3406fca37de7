package get_available_dates

import (
	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	getAvailableDates "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/get_available_dates"
)

type AvailableDatesResponse struct {
	ProfessionalID uuid.UUID `json:"professionalId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Dates          []string  `json:"dates"`
}

func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}
	return &AvailableDatesResponse{
		ProfessionalID: resp.ProfessionalID,
		From:           resp.From.Format(domain.DateFormat),
		To:             resp.To.Format(domain.DateFormat),
		Dates:          dates,
	}
}
