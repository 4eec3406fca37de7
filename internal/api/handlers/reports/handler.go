package reports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports"
	"github.com/rian23304/sistema-pdv-nail-designer/internal/service/reports/models"
)

const (
	msgInvalidProfessionalID = "invalid professional id"
	msgProfessionalNotFound  = "professional not found"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Sales GET /api/v1/reports/sales?startDate=&endDate=
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SalesReport(r.Context(), periodFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Professional GET /api/v1/reports/professionals/{professionalId}?startDate=&endDate=
func (h *Handler) Professional(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "professionalId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}
	result, err := h.service.ProfessionalReport(r.Context(), id, periodFromQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Stock GET /api/v1/reports/stock
func (h *Handler) Stock(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.StockReport(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func periodFromQuery(r *http.Request) *models.PeriodRequest {
	query := r.URL.Query()
	return &models.PeriodRequest{
		StartDate: strings.TrimSpace(query.Get("startDate")),
		EndDate:   strings.TrimSpace(query.Get("endDate")),
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reports.ErrInvalidInput):
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err, reports.ErrInvalidInput))

	case errors.Is(err, reports.ErrProfessionalNotFound):
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	default:
		h.logger.Error("%s %s - Failed: error=%v", r.Method, r.URL.Path, err)
		handlers.RespondInternalError(w)
	}
}
