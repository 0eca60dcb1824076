package update_slot_rule

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/api/validation"
	scheduleService "github.com/inovalogics-art/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotRuleNotFound   = "slot rule not found"
	msgInvalidTimeRange   = "start_time must be before end_time"
	msgInvalidInput       = "invalid slot rule data"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSlotRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /admin/slots - Validation failed: %v", err)
		handlers.HandleValidationError(w, err)
		return
	}

	result, err := h.service.UpdateSlotRule(r.Context(), req.ID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSlotRuleNotFound):
			h.logger.Warn("PUT /admin/slots - Slot rule id=%s not found", req.ID)
			handlers.RespondNotFound(w, msgSlotRuleNotFound)

		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/slots - Invalid time range for rule id=%s", req.ID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slots - Invalid input for rule id=%s: %v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/slots - Failed to update rule id=%s: %v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slots - Slot rule updated: id=%s", req.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
