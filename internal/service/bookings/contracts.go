package bookings

import (
	"context"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, upd domain.BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
	ExistsActiveAt(ctx context.Context, date time.Time, slot types.TimeString, excludeID *string) (bool, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
