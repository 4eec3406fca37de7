package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is a bookable salon service (manicure, gel nails, ...)
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Professional is a staff member who performs services
type Professional struct {
	ID          uuid.UUID
	Name        string
	Email       *string
	Phone       *string
	Specialties []string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanPerform matches the service category against the professional's
// specialties: case-insensitive substring containment in either direction.
func (p *Professional) CanPerform(service *Service) bool {
	category := strings.ToLower(strings.TrimSpace(service.Category))
	if category == "" {
		return false
	}
	for _, specialty := range p.Specialties {
		spec := strings.ToLower(strings.TrimSpace(specialty))
		if spec == "" {
			continue
		}
		if strings.Contains(category, spec) || strings.Contains(spec, category) {
			return true
		}
	}
	return false
}

// Product is a retail item sold at the counter
type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Barcode     *string
	Category    string
	Unit        string
	Price       float64
	Cost        float64
	Stock       int
	MinStock    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock returns true when stock is at or below the minimum
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Margin returns the unit profit
func (p *Product) Margin() float64 {
	return RoundMoney(p.Price - p.Cost)
}
