package get_availability

import (
	"context"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// ListActiveByDay получает активные правила для дня недели (0 = воскресенье)
	ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.SlotRule, error)
	// GetBlockedDateByDate получает блокировку по календарной дате
	GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// List получает бронирования по фильтру
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
