package create_booking

import (
	"errors"
	"net/http"

	"github.com/rian23304/sistema-pdv-nail-designer/internal/api/handlers"
	createBooking "github.com/rian23304/sistema-pdv-nail-designer/internal/usecase/create_booking"
)

const (
	msgInvalidDate          = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime          = "invalid time, expected HH:MM"
	msgInvalidInput         = "name, phone, professional and service are required"
	msgSlotNotAvailable     = "the selected time is no longer available"
	msgServiceNotFound      = "service not found"
	msgProfessionalNotFound = "professional not found"
	msgCannotPerform        = "the professional does not perform this service"
	msgSalonClosed          = "the salon is closed on the selected date"
	msgDateInPast           = "the selected date is in the past"
	msgDateTooFar           = "the selected date is too far in the future"
	msgInvalidTimeSlot      = "the selected time is outside the salon schedule"
	msgTooLateToBook        = "too late to book this time"
)

// Handler serves both the public booking page and staff-entered
// appointments. The source decides which booking rules apply.
type Handler struct {
	useCase CreateBookingUseCase
	source  createBooking.Source
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, source createBooking.Source, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		source:  source,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings (public) and POST /api/v1/appointments (staff)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decode body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	// Convert the HTTP request to the use case model (parses date and time)
	useCaseReq, err := req.ToUseCaseRequest(h.source)
	if err != nil {
		h.logger.Warn("POST %s - Failed to parse request: %v", r.URL.Path, err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Call use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST %s - Slot not available: professional_id=%s, date=%s, time=%s",
				r.URL.Path, req.ProfessionalID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrProfessionalCannotPerform):
			handlers.RespondBadRequest(w, msgCannotPerform)

		case errors.Is(err, createBooking.ErrSalonClosed):
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid input: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST %s - Failed to create booking: professional_id=%s, service_id=%s, error=%v",
				r.URL.Path, req.ProfessionalID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Build HTTP response
	h.logger.Info("POST %s - Booking created: appointment_id=%s, professional_id=%s, source=%s",
		r.URL.Path, result.ID, result.ProfessionalID, h.source)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
