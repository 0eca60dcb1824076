package create_schedule_entry

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/api/validation"
	scheduleService "github.com/inovalogics-art/booking-service/internal/service/schedule"
	"github.com/inovalogics-art/booking-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSlotFields  = "day_of_week, start_time and end_time are required for type=slot"
	msgMissingDate        = "date is required for type=blocked_date"
	msgInvalidTimeRange   = "start_time must be before end_time"
	msgDateAlreadyBlocked = "this date is already blocked"
	msgInvalidInput       = "invalid schedule entry"
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

// Handle POST /api/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := validation.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /admin/slots - Validation failed: %v", err)
		handlers.HandleValidationError(w, err)
		return
	}

	switch req.Type {
	case EntryTypeSlot:
		h.createSlotRule(w, r, &req)
	case EntryTypeBlockedDate:
		h.createBlockedDate(w, r, &req)
	}
}

func (h *Handler) createSlotRule(w http.ResponseWriter, r *http.Request, req *CreateScheduleEntryRequest) {
	if req.DayOfWeek == nil || req.StartTime == nil || req.EndTime == nil {
		h.logger.Warn("POST /admin/slots - Missing slot fields")
		handlers.RespondBadRequest(w, msgMissingSlotFields)
		return
	}

	result, err := h.service.AddSlotRule(r.Context(), &models.AddSlotRuleRequest{
		DayOfWeek: *req.DayOfWeek,
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/slots - Invalid time range: %s-%s", *req.StartTime, *req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid slot rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots - Failed to add slot rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot rule created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) createBlockedDate(w http.ResponseWriter, r *http.Request, req *CreateScheduleEntryRequest) {
	if req.Date == nil {
		h.logger.Warn("POST /admin/slots - Missing date for blocked_date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.BlockDate(r.Context(), &models.BlockDateRequest{
		Date:   *req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrDateAlreadyBlocked):
			h.logger.Warn("POST /admin/slots - Date %s already blocked", *req.Date)
			handlers.RespondConflict(w, msgDateAlreadyBlocked)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid blocked date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slots - Failed to block date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Date blocked: id=%s, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
