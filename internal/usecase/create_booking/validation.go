package create_booking

import (
	"fmt"
	"strings"

	"github.com/inovalogics-art/booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < domain.MinNameLength || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be between %d and %d characters",
			ErrInvalidInput, domain.MinNameLength, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	if req.MeetingType != "" {
		if _, ok := domain.ParseMeetingType(req.MeetingType); !ok {
			return fmt.Errorf("%w: unknown meeting type %q", ErrInvalidInput, req.MeetingType)
		}
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	return nil
}
