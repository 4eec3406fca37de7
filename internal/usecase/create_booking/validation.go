package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if domain.PhoneDigits(req.CustomerPhone) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: customerPhone must have at least %d digits", ErrInvalidInput, domain.MinPhoneDigits)
	}

	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	switch req.Source {
	case SourcePublic, SourceStaff:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	return nil
}

// validateDate rejects past dates and, when maxDays > 0, dates after today+maxDays
func validateDate(date, now time.Time, maxDays int) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if maxDays <= 0 {
		return nil
	}

	maxDate := domain.DateOnly(now).AddDate(0, 0, maxDays)
	if domain.DateOnly(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxDays)
	}
	return nil
}

// validateNotice rejects a start time for today earlier than now plus the notice
func validateNotice(date time.Time, start types.TimeString, now time.Time, noticeMinutes int) error {
	if !domain.SameDay(date, now) {
		return nil
	}

	minStart := now.Hour()*60 + now.Minute() + noticeMinutes
	if start.Minutes() < minStart {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, noticeMinutes)
	}
	return nil
}
