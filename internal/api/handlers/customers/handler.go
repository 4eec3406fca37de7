package customers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/customers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/customers/models"
)

const (
	msgInvalidCustomerID = "invalid customer id"
	msgNotFound          = "customer not found"
	msgAlreadyExists     = "a customer with this phone already exists"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/customers?search=
// search matches name, or phone digits when it looks like a phone number.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/customers/{customerId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}
	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}
	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("POST /customers - Created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/customers/{customerId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "customerId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}
	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}
	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, customers.ErrInvalidInput):
		h.logger.Warn("%s %s - Invalid input: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, customers.ErrInvalidInput))

	case errors.Is(err, customers.ErrCustomerNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, customers.ErrCustomerAlreadyExists):
		handlers.RespondConflict(w, msgAlreadyExists)

	default:
		h.logger.Error("%s %s - Failed: error=%v", r.Method, r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}
