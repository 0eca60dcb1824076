package update_booking

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/api/validation"
	bookingsService "github.com/inovalogics-art/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "status change is not allowed"
	msgDateInPast         = "scheduled date is in the past"
	msgDateBlocked        = "this date is not available for booking"
	msgSlotTaken          = "this time slot is already taken"
	msgInvalidInput       = "invalid booking data"
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

// Handle PUT /api/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /admin/bookings - Validation failed: %v", err)
		handlers.HandleValidationError(w, err)
		return
	}

	result, err := h.service.Update(r.Context(), req.ID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/bookings - Booking id=%s not found", req.ID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PUT /admin/bookings - Invalid transition for booking id=%s: %v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, bookingsService.ErrDateInPast):
			h.logger.Warn("PUT /admin/bookings - Reschedule date in past for booking id=%s", req.ID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookingsService.ErrDateBlocked):
			h.logger.Warn("PUT /admin/bookings - Reschedule date blocked for booking id=%s", req.ID)
			handlers.RespondConflict(w, msgDateBlocked)

		case errors.Is(err, bookingsService.ErrSlotTaken):
			h.logger.Warn("PUT /admin/bookings - Slot taken for booking id=%s", req.ID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/bookings - Invalid input for booking id=%s: %v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/bookings - Failed to update booking id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/bookings - Booking updated: id=%s", req.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
