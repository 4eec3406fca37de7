package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/types"
)

var (
	ErrBlockedPeriodMissingTimes = errors.New("start and end time are required for a partial block")
	ErrBlockedPeriodInvalidRange = errors.New("block start must be before end")
)

// BlockedPeriod is an administrator-declared blackout. A nil ProfessionalID
// applies to every professional. When AllDay is set, the times are ignored.
type BlockedPeriod struct {
	ID             uuid.UUID
	Date           time.Time
	Reason         *string
	AllDay         bool
	StartTime      *types.TimeString
	EndTime        *types.TimeString
	ProfessionalID *uuid.UUID
	CreatedAt      time.Time
}

// IsGlobal returns true if the block applies to every professional
func (b *BlockedPeriod) IsGlobal() bool {
	return b.ProfessionalID == nil
}

// AppliesTo reports whether the block targets the professional
func (b *BlockedPeriod) AppliesTo(professionalID uuid.UUID) bool {
	return b.IsGlobal() || *b.ProfessionalID == professionalID
}

// HasTimeRange returns true if both ends of a partial block are present
func (b *BlockedPeriod) HasTimeRange() bool {
	return b.StartTime != nil && b.EndTime != nil && !b.StartTime.IsZero() && !b.EndTime.IsZero()
}

// Validate enforces the write-time rules. Stored records that break them are
// still read and evaluated permissively.
func (b *BlockedPeriod) Validate() error {
	if b.AllDay {
		return nil
	}
	if !b.HasTimeRange() {
		return ErrBlockedPeriodMissingTimes
	}
	if err := b.StartTime.Validate(); err != nil {
		return err
	}
	if err := b.EndTime.Validate(); err != nil {
		return err
	}
	if !b.StartTime.IsBefore(*b.EndTime) {
		return ErrBlockedPeriodInvalidRange
	}
	return nil
}

// BlockedPeriodFilter narrows blocked period listings
type BlockedPeriodFilter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	ProfessionalID *uuid.UUID
	AllDayOnly     bool
}
