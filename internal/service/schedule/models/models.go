package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDayOfWeek = errors.New("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidHours     = errors.New("openTime must be before closeTime")
	ErrReasonTooLong    = fmt.Errorf("reason must be at most %d characters", domain.MaxReasonLength)
)

type ListBlockedPeriodsRequest struct {
	StartDate      *time.Time
	EndDate        *time.Time
	ProfessionalID *uuid.UUID
}

type CreateBlockedPeriodRequest struct {
	Date           string     `json:"date"`
	Reason         *string    `json:"reason,omitempty"`
	AllDay         bool       `json:"allDay"`
	StartTime      *string    `json:"startTime,omitempty"`
	EndTime        *string    `json:"endTime,omitempty"`
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
}

// ToDomain parses and validates the request. Times are dropped for an
// all-day block.
func (r *CreateBlockedPeriodRequest) ToDomain() (*domain.BlockedPeriod, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	b := &domain.BlockedPeriod{
		Date:           date,
		AllDay:         r.AllDay,
		ProfessionalID: r.ProfessionalID,
	}

	if r.Reason != nil {
		reason := strings.TrimSpace(*r.Reason)
		if utf8.RuneCountInString(reason) > domain.MaxReasonLength {
			return nil, ErrReasonTooLong
		}
		if reason != "" {
			b.Reason = &reason
		}
	}

	if !r.AllDay {
		if r.StartTime != nil {
			start := types.TimeString(*r.StartTime)
			b.StartTime = &start
		}
		if r.EndTime != nil {
			end := types.TimeString(*r.EndTime)
			b.EndTime = &end
		}
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

type UpdateBusinessHoursRequest struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Active    bool   `json:"active"`
}

// ToDomain validates the hours for a weekday. An inactive day may keep
// empty times.
func (r *UpdateBusinessHoursRequest) ToDomain(dayOfWeek int) (*domain.BusinessHours, error) {
	if dayOfWeek < int(time.Sunday) || dayOfWeek > int(time.Saturday) {
		return nil, ErrInvalidDayOfWeek
	}

	h := &domain.BusinessHours{
		DayOfWeek: time.Weekday(dayOfWeek),
		OpenTime:  types.TimeString(r.OpenTime),
		CloseTime: types.TimeString(r.CloseTime),
		Active:    r.Active,
	}

	if !r.Active && h.OpenTime.IsZero() && h.CloseTime.IsZero() {
		return h, nil
	}

	if err := h.OpenTime.Validate(); err != nil {
		return nil, fmt.Errorf("openTime: %w", err)
	}
	if err := h.CloseTime.Validate(); err != nil {
		return nil, fmt.Errorf("closeTime: %w", err)
	}
	if !h.OpenTime.IsBefore(h.CloseTime) {
		return nil, ErrInvalidHours
	}
	return h, nil
}

type BlockedPeriodResponse struct {
	ID             uuid.UUID  `json:"id"`
	Date           string     `json:"date"`
	Reason         *string    `json:"reason,omitempty"`
	AllDay         bool       `json:"allDay"`
	StartTime      *string    `json:"startTime,omitempty"`
	EndTime        *string    `json:"endTime,omitempty"`
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type BlockedPeriodListResponse struct {
	BlockedPeriods []BlockedPeriodResponse `json:"blockedPeriods"`
}

type BusinessHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Active    bool   `json:"active"`
}

type BusinessHoursListResponse struct {
	Days []BusinessHoursResponse `json:"days"`
}

func FromDomainBlockedPeriod(b *domain.BlockedPeriod) *BlockedPeriodResponse {
	if b == nil {
		return nil
	}

	resp := &BlockedPeriodResponse{
		ID:             b.ID,
		Date:           b.Date.Format(domain.DateFormat),
		Reason:         b.Reason,
		AllDay:         b.AllDay,
		ProfessionalID: b.ProfessionalID,
		CreatedAt:      b.CreatedAt,
	}
	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	if b.EndTime != nil {
		e := b.EndTime.String()
		resp.EndTime = &e
	}
	return resp
}

func FromDomainBlockedPeriodList(blocks []*domain.BlockedPeriod) *BlockedPeriodListResponse {
	resp := &BlockedPeriodListResponse{BlockedPeriods: make([]BlockedPeriodResponse, 0, len(blocks))}
	for _, b := range blocks {
		if r := FromDomainBlockedPeriod(b); r != nil {
			resp.BlockedPeriods = append(resp.BlockedPeriods, *r)
		}
	}
	return resp
}

func FromDomainBusinessHours(h domain.BusinessHours) BusinessHoursResponse {
	return BusinessHoursResponse{
		DayOfWeek: int(h.DayOfWeek),
		DayName:   h.DayOfWeek.String(),
		OpenTime:  h.OpenTime.String(),
		CloseTime: h.CloseTime.String(),
		Active:    h.Active,
	}
}

// FromWeeklySchedule lists all seven days starting on Sunday
func FromWeeklySchedule(s domain.WeeklySchedule) *BusinessHoursListResponse {
	resp := &BusinessHoursListResponse{Days: make([]BusinessHoursResponse, 0, 7)}
	for d := time.Sunday; d <= time.Saturday; d++ {
		h, ok := s[d]
		if !ok {
			h = domain.BusinessHours{DayOfWeek: d}
		}
		resp.Days = append(resp.Days, FromDomainBusinessHours(h))
	}
	return resp
}
