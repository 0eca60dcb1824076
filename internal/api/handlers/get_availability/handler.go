package get_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/inovalogics-art/booking-service/internal/api/handlers"
	"github.com/inovalogics-art/booking-service/internal/domain"
	getAvailability "github.com/inovalogics-art/booking-service/internal/usecase/get_availability"
)

const (
	msgMissingDate   = "date query parameter is required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidBuffer = "invalid buffer value, expected a non-negative integer"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings?date=YYYY-MM-DD&buffer=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	buffer := 0
	if rawBuffer := r.URL.Query().Get("buffer"); rawBuffer != "" {
		buffer, err = strconv.Atoi(rawBuffer)
		if err != nil || buffer < 0 {
			h.logger.Warn("GET /bookings - Invalid buffer %q", rawBuffer)
			handlers.RespondBadRequest(w, msgInvalidBuffer)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:          date,
		BufferMinutes: buffer,
	})
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get availability for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
