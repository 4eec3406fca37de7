package catalog

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/catalog/models"
)

const (
	msgInvalidID            = "invalid id"
	msgInvalidParams        = "invalid query parameters"
	msgServiceNotFound      = "service not found"
	msgProfessionalNotFound = "professional not found"
	msgProductNotFound      = "product not found"
	msgBarcodeTaken         = "barcode already registered"
)

// Handler serves services, professionals and products. Public listings
// never include inactive entries; the staff listings honour includeInactive.
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListActiveServices GET /api/v1/services (public)
func (h *Handler) ListActiveServices(w http.ResponseWriter, r *http.Request) {
	h.listServices(w, r, false)
}

// ListServices GET /api/v1/admin/services?includeInactive=
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	h.listServices(w, r, includeInactive)
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	result, err := h.service.ListServices(r.Context(), includeInactive)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetService GET /api/v1/services/{serviceId} (public)
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	result, err := h.service.GetService(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateService POST /api/v1/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("POST /services - Created: id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateService PUT /api/v1/services/{serviceId}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	var req models.UpdateServiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleService PATCH /api/v1/services/{serviceId}/toggle
func (h *Handler) ToggleService(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	result, err := h.service.ToggleService(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("PATCH /services/{id}/toggle - id=%s, active=%t", id, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListActiveProfessionals GET /api/v1/professionals?serviceId= (public)
func (h *Handler) ListActiveProfessionals(w http.ResponseWriter, r *http.Request) {
	h.listProfessionals(w, r, false)
}

// ListProfessionals GET /api/v1/admin/professionals?serviceId=&includeInactive=
func (h *Handler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	h.listProfessionals(w, r, includeInactive)
}

func (h *Handler) listProfessionals(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	serviceID, err := handlers.QueryUUID(r, "serviceId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	result, err := h.service.ListProfessionals(r.Context(), serviceID, includeInactive)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateProfessional POST /api/v1/professionals
func (h *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfessionalRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.CreateProfessional(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("POST /professionals - Created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateProfessional PUT /api/v1/professionals/{professionalId}
func (h *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "professionalId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	var req models.UpdateProfessionalRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.UpdateProfessional(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListProducts GET /api/v1/products?search=&includeInactive=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.ListProducts(r.Context(), search, includeInactive)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListLowStock GET /api/v1/products/low-stock
func (h *Handler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLowStock(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateProduct POST /api/v1/products
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("POST /products - Created: id=%s, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateProduct PUT /api/v1/products/{productId}
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "productId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	var req models.UpdateProductRequest
	if !h.decode(w, r, &req) {
		return
	}
	result, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ImportTemplate GET /api/v1/products/import-template
func (h *Handler) ImportTemplate(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.WriteImportTemplate(&buf); err != nil {
		h.logger.Error("GET /products/import-template - Failed to render: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="products-template.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s %s - Invalid request body: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s %s - Invalid input: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, catalog.ErrInvalidInput))

	case errors.Is(err, catalog.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	case errors.Is(err, catalog.ErrProductNotFound):
		handlers.RespondNotFound(w, msgProductNotFound)

	case errors.Is(err, catalog.ErrBarcodeTaken):
		handlers.RespondConflict(w, msgBarcodeTaken)

	default:
		h.logger.Error("%s %s - Failed: error=%v", r.Method, r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}
