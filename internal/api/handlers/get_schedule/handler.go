package get_schedule

import (
	"net/http"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
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

// Handle GET /api/admin/slots
// Ручка намеренно открыта без сессии: её читает публичный календарь.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSchedule(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/slots - Failed to get schedule: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
