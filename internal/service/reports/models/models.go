package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

// MaxPeriodDays bounds a report period
const MaxPeriodDays = 366

var (
	ErrInvalidDate    = errors.New("dates must be YYYY-MM-DD")
	ErrInvalidPeriod  = errors.New("startDate must not be after endDate")
	ErrPeriodTooLarge = errors.New("report period must be at most 366 days")
)

// PeriodRequest is an inclusive range of calendar days. Empty bounds default
// to the current month up to today.
type PeriodRequest struct {
	StartDate string
	EndDate   string
}

// Period is a resolved report range
type Period struct {
	// Start and End are calendar days (UTC midnight), End inclusive
	Start time.Time
	End   time.Time
	// From and To bound timestamps in the salon's location, To exclusive
	From time.Time
	To   time.Time
}

func (r *PeriodRequest) Resolve(now time.Time) (Period, error) {
	today := domain.DateOnly(now)
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := today

	if s := strings.TrimSpace(r.StartDate); s != "" {
		parsed, err := domain.ParseDate(s)
		if err != nil {
			return Period{}, ErrInvalidDate
		}
		start = parsed
	}
	if e := strings.TrimSpace(r.EndDate); e != "" {
		parsed, err := domain.ParseDate(e)
		if err != nil {
			return Period{}, ErrInvalidDate
		}
		end = parsed
	}

	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	if end.Sub(start) > MaxPeriodDays*24*time.Hour {
		return Period{}, ErrPeriodTooLarge
	}

	loc := now.Location()
	return Period{
		Start: start,
		End:   end,
		From:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
		To:    time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, loc),
	}, nil
}

type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func FromPeriod(p Period) PeriodResponse {
	return PeriodResponse{
		StartDate: p.Start.Format(domain.DateFormat),
		EndDate:   p.End.Format(domain.DateFormat),
	}
}

type RankedItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Revenue  float64   `json:"revenue"`
}

type SalesReportResponse struct {
	Period                PeriodResponse     `json:"period"`
	SalesCount            int                `json:"salesCount"`
	CancelledSales        int                `json:"cancelledSales"`
	Revenue               float64            `json:"revenue"`
	Discounts             float64            `json:"discounts"`
	AverageTicket         float64            `json:"averageTicket"`
	ByPaymentMethod       map[string]float64 `json:"byPaymentMethod"`
	CompletedAppointments int                `json:"completedAppointments"`
	CancelledAppointments int                `json:"cancelledAppointments"`
	TopServices           []RankedItem       `json:"topServices"`
	TopProducts           []RankedItem       `json:"topProducts"`
}

type ProfessionalReportResponse struct {
	Period                PeriodResponse `json:"period"`
	ProfessionalID        uuid.UUID      `json:"professionalId"`
	ProfessionalName      string         `json:"professionalName"`
	ServicesProvided      int            `json:"servicesProvided"`
	Revenue               float64        `json:"revenue"`
	CompletedAppointments int            `json:"completedAppointments"`
	CancelledAppointments int            `json:"cancelledAppointments"`
	Services              []RankedItem   `json:"services"`
}

type StockItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Stock    int       `json:"stock"`
	MinStock int       `json:"minStock"`
}

type StockReportResponse struct {
	TotalProducts int         `json:"totalProducts"`
	TotalUnits    int         `json:"totalUnits"`
	CostValue     float64     `json:"costValue"`
	RetailValue   float64     `json:"retailValue"`
	OutOfStock    int         `json:"outOfStock"`
	LowStock      []StockItem `json:"lowStock"`
}
