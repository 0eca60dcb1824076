package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	bookingsService "github.com/inovalogics-art/booking-service/internal/service/bookings"
	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
)

const (
	msgMissingID       = "id query parameter is required"
	msgBookingNotFound = "booking not found"
	msgCannotCancel    = "booking cannot be cancelled"
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

// Handle DELETE /api/admin/bookings?id=&reason=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.logger.Warn("DELETE /admin/bookings - Missing id parameter")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	req := &models.CancelBookingRequest{}
	if reason := r.URL.Query().Get("reason"); reason != "" {
		req.Reason = &reason
	}

	result, err := h.service.Cancel(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings - Booking id=%s not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("DELETE /admin/bookings - Cannot cancel booking id=%s: %v", id, err)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("DELETE /admin/bookings - Failed to cancel booking id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings - Booking cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
