package get_availability

import (
	"github.com/inovalogics-art/booking-service/internal/domain"
	getAvailability "github.com/inovalogics-art/booking-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	DayName        string   `json:"day_name"`
	Blocked        bool     `json:"blocked"`
	BlockedReason  *string  `json:"blocked_reason,omitempty"`
	AvailableTimes []string `json:"available_times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	times := make([]string, len(resp.AvailableTimes))
	for i, t := range resp.AvailableTimes {
		times[i] = string(t)
	}

	return &AvailabilityResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		DayName:        resp.DayName,
		Blocked:        resp.Blocked,
		BlockedReason:  resp.BlockedReason,
		AvailableTimes: times,
	}
}
