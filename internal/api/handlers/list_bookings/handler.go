package list_bookings

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	bookingsService "github.com/inovalogics-art/booking-service/internal/service/bookings"
	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "invalid filter parameters"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/bookings?status=&date=&email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("email"); v != "" {
		req.Email = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
