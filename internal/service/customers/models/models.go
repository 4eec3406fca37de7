package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidPhone = fmt.Errorf("phone must have at least %d digits", domain.MinPhoneDigits)
	ErrInvalidBirth = errors.New("birthDate must be YYYY-MM-DD")
	ErrNotesTooLong = fmt.Errorf("notes must be at most %d characters", domain.MaxNotesLength)
)

type CreateCustomerRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToDomain validates the request. The phone is stored normalized so lookups
// by phone from the booking page find the same customer.
func (r *CreateCustomerRequest) ToDomain() (*domain.Customer, error) {
	c := &domain.Customer{
		Name:    strings.TrimSpace(r.Name),
		Phone:   domain.NormalizePhone(r.Phone),
		Email:   trimmed(r.Email),
		Address: trimmed(r.Address),
		Notes:   trimmed(r.Notes),
	}
	if r.BirthDate != nil && strings.TrimSpace(*r.BirthDate) != "" {
		birth, err := domain.ParseDate(strings.TrimSpace(*r.BirthDate))
		if err != nil {
			return nil, ErrInvalidBirth
		}
		c.BirthDate = &birth
	}
	return c, validate(c)
}

// UpdateCustomerRequest is a partial update; nil fields are left untouched
type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateCustomerRequest) ApplyTo(c *domain.Customer) error {
	if r.Name != nil {
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		c.Phone = domain.NormalizePhone(*r.Phone)
	}
	if r.Email != nil {
		c.Email = trimmed(r.Email)
	}
	if r.Address != nil {
		c.Address = trimmed(r.Address)
	}
	if r.Notes != nil {
		c.Notes = trimmed(r.Notes)
	}
	if r.BirthDate != nil {
		if strings.TrimSpace(*r.BirthDate) == "" {
			c.BirthDate = nil
		} else {
			birth, err := domain.ParseDate(strings.TrimSpace(*r.BirthDate))
			if err != nil {
				return ErrInvalidBirth
			}
			c.BirthDate = &birth
		}
	}
	return validate(c)
}

func validate(c *domain.Customer) error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if domain.PhoneDigits(c.Phone) < domain.MinPhoneDigits {
		return ErrInvalidPhone
	}
	if c.Notes != nil && utf8.RuneCountInString(*c.Notes) > domain.MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

type CustomerResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          *string    `json:"email,omitempty"`
	Address        *string    `json:"address,omitempty"`
	BirthDate      *string    `json:"birthDate,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	TotalPurchases int        `json:"totalPurchases"`
	TotalSpent     float64    `json:"totalSpent"`
	LastPurchaseAt *time.Time `json:"lastPurchaseAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	resp := &CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Notes:          c.Notes,
		TotalPurchases: c.TotalPurchases,
		TotalSpent:     c.TotalSpent,
		LastPurchaseAt: c.LastPurchaseAt,
		CreatedAt:      c.CreatedAt,
	}
	if c.BirthDate != nil {
		b := c.BirthDate.Format(domain.DateFormat)
		resp.BirthDate = &b
	}
	return resp
}

func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(c))
	}
	return resp
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
