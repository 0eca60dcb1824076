package delete_schedule_entry

import (
	"errors"
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	scheduleService "github.com/inovalogics-art/booking-service/internal/service/schedule"
)

// Типы записей расписания
const (
	entryTypeSlot        = "slot"
	entryTypeBlockedDate = "blocked_date"
)

const (
	msgMissingID          = "id query parameter is required"
	msgInvalidType        = "type must be slot or blocked_date"
	msgSlotRuleNotFound   = "slot rule not found"
	msgBlockedNotFound    = "blocked date not found"
	msgSlotDeactivated    = "slot rule deactivated"
	msgBlockedDateRemoved = "blocked date removed"
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

// Handle DELETE /api/admin/slots?id=&type=
// Правила слотов выключаются мягко, блокировки дат удаляются насовсем.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	id := query.Get("id")
	if id == "" {
		h.logger.Warn("DELETE /admin/slots - Missing id parameter")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	switch query.Get("type") {
	case entryTypeSlot:
		h.deactivateSlotRule(w, r, id)
	case entryTypeBlockedDate:
		h.unblockDate(w, r, id)
	default:
		h.logger.Warn("DELETE /admin/slots - Invalid type %q", query.Get("type"))
		handlers.RespondBadRequest(w, msgInvalidType)
	}
}

func (h *Handler) deactivateSlotRule(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.DeactivateSlotRule(r.Context(), id); err != nil {
		if errors.Is(err, scheduleService.ErrSlotRuleNotFound) {
			h.logger.Warn("DELETE /admin/slots - Slot rule id=%s not found", id)
			handlers.RespondNotFound(w, msgSlotRuleNotFound)
			return
		}
		h.logger.Error("DELETE /admin/slots - Failed to deactivate rule id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/slots - Slot rule deactivated: id=%s", id)
	handlers.RespondMessage(w, http.StatusOK, msgSlotDeactivated)
}

func (h *Handler) unblockDate(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.UnblockDate(r.Context(), id); err != nil {
		if errors.Is(err, scheduleService.ErrBlockedDateNotFound) {
			h.logger.Warn("DELETE /admin/slots - Blocked date id=%s not found", id)
			handlers.RespondNotFound(w, msgBlockedNotFound)
			return
		}
		h.logger.Error("DELETE /admin/slots - Failed to unblock date id=%s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/slots - Blocked date removed: id=%s", id)
	handlers.RespondMessage(w, http.StatusOK, msgBlockedDateRemoved)
}
