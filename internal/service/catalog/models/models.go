package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/domain"
)

const defaultProductUnit = "un"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrInvalidDuration  = fmt.Errorf("durationMinutes must be between %d and %d", domain.MinServiceDuration, domain.MaxServiceDuration)
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrInvalidCost      = errors.New("cost must not be negative")
	ErrInvalidStock     = errors.New("stock and minStock must not be negative")
)

// Services

type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

func (r *CreateServiceRequest) ToDomain() (*domain.Service, error) {
	s := &domain.Service{
		Name:            strings.TrimSpace(r.Name),
		Description:     trimmed(r.Description),
		DurationMinutes: r.DurationMinutes,
		Price:           domain.RoundMoney(r.Price),
		Category:        strings.TrimSpace(r.Category),
		Active:          true,
	}
	return s, validateService(s)
}

// UpdateServiceRequest is a partial update; nil fields are left untouched
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

func (r *UpdateServiceRequest) ApplyTo(s *domain.Service) error {
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		s.Description = trimmed(r.Description)
	}
	if r.DurationMinutes != nil {
		s.DurationMinutes = *r.DurationMinutes
	}
	if r.Price != nil {
		s.Price = domain.RoundMoney(*r.Price)
	}
	if r.Category != nil {
		s.Category = strings.TrimSpace(*r.Category)
	}
	if r.Active != nil {
		s.Active = *r.Active
	}
	return validateService(s)
}

func validateService(s *domain.Service) error {
	if s.Name == "" {
		return ErrNameRequired
	}
	if s.Category == "" {
		return ErrCategoryRequired
	}
	if s.DurationMinutes < domain.MinServiceDuration || s.DurationMinutes > domain.MaxServiceDuration {
		return ErrInvalidDuration
	}
	if s.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Category:        s.Category,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}

// Professionals

type CreateProfessionalRequest struct {
	Name        string   `json:"name"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Specialties []string `json:"specialties"`
}

func (r *CreateProfessionalRequest) ToDomain() (*domain.Professional, error) {
	p := &domain.Professional{
		Name:        strings.TrimSpace(r.Name),
		Email:       trimmed(r.Email),
		Phone:       trimmed(r.Phone),
		Specialties: cleanSpecialties(r.Specialties),
		Active:      true,
	}
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	return p, nil
}

type UpdateProfessionalRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func (r *UpdateProfessionalRequest) ApplyTo(p *domain.Professional) error {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		p.Email = trimmed(r.Email)
	}
	if r.Phone != nil {
		p.Phone = trimmed(r.Phone)
	}
	if r.Specialties != nil {
		p.Specialties = cleanSpecialties(r.Specialties)
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}

type ProfessionalResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Specialties []string  `json:"specialties"`
	Active      bool      `json:"active"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}
	specialties := p.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return &ProfessionalResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Specialties: specialties,
		Active:      p.Active,
	}
}

func FromDomainProfessionalList(professionals []*domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{Professionals: make([]ProfessionalResponse, 0, len(professionals))}
	for _, p := range professionals {
		resp.Professionals = append(resp.Professionals, *FromDomainProfessional(p))
	}
	return resp
}

// Products

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Barcode     *string `json:"barcode,omitempty"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
}

func (r *CreateProductRequest) ToDomain() (*domain.Product, error) {
	p := &domain.Product{
		Name:        strings.TrimSpace(r.Name),
		Description: trimmed(r.Description),
		Barcode:     trimmed(r.Barcode),
		Category:    strings.TrimSpace(r.Category),
		Unit:        strings.TrimSpace(r.Unit),
		Price:       domain.RoundMoney(r.Price),
		Cost:        domain.RoundMoney(r.Cost),
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Active:      true,
	}
	if p.Unit == "" {
		p.Unit = defaultProductUnit
	}
	return p, validateProduct(p)
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Barcode     *string  `json:"barcode,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	MinStock    *int     `json:"minStock,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func (r *UpdateProductRequest) ApplyTo(p *domain.Product) error {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		p.Description = trimmed(r.Description)
	}
	if r.Barcode != nil {
		p.Barcode = trimmed(r.Barcode)
	}
	if r.Category != nil {
		p.Category = strings.TrimSpace(*r.Category)
	}
	if r.Unit != nil && strings.TrimSpace(*r.Unit) != "" {
		p.Unit = strings.TrimSpace(*r.Unit)
	}
	if r.Price != nil {
		p.Price = domain.RoundMoney(*r.Price)
	}
	if r.Cost != nil {
		p.Cost = domain.RoundMoney(*r.Cost)
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.MinStock != nil {
		p.MinStock = *r.MinStock
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	return validateProduct(p)
}

func validateProduct(p *domain.Product) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.Cost < 0 {
		return ErrInvalidCost
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return ErrInvalidStock
	}
	return nil
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Barcode     *string   `json:"barcode,omitempty"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Margin      float64   `json:"margin"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	LowStock    bool      `json:"lowStock"`
	Active      bool      `json:"active"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

func FromDomainProduct(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Barcode:     p.Barcode,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Cost:        p.Cost,
		Margin:      p.Margin(),
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		Active:      p.Active,
	}
}

func FromDomainProductList(products []*domain.Product) *ProductListResponse {
	resp := &ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, *FromDomainProduct(p))
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

func cleanSpecialties(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
