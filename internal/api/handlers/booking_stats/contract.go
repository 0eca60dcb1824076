package booking_stats

import (
	"context"

	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
