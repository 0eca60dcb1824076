package cancel_booking

import (
	"context"

	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
