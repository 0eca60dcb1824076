package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	dayName := domain.DayName(req.Date)
	now := uc.timeProvider.Now()

	// 2. Прошедшая дата: успешный ответ без слотов, а не ошибка.
	// Клиентские календари листают назад, 4xx тут только шумит.
	if domain.IsDatePast(req.Date, now) {
		uc.logger.Info("GetAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.blockedResponse(req.Date, dayName, nil), nil
	}

	// 3. Проверяем блокировку даты
	blocked, err := uc.scheduleRepo.GetBlockedDateByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
		uc.logger.Error("GetAvailability: failed to check blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}
	if blocked != nil {
		uc.logger.Info("GetAvailability: date %s is blocked", req.Date.Format(domain.DateFormat))
		return uc.blockedResponse(req.Date, dayName, blocked.Reason), nil
	}

	// 4. Активные правила на этот день недели
	rules, err := uc.scheduleRepo.ListActiveByDay(ctx, domain.DayOfWeek(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slot rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		return &Response{
			Date:           req.Date,
			DayName:        dayName,
			AvailableTimes: []types.TimeString{},
		}, nil
	}

	// 5. Генерируем сетку слотов по правилам
	slots := collectSlotTimes(rules)

	// 6. Убираем времена, занятые активными бронированиями,
	// с учетом опциональной паузы вокруг них
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	buffer := req.BufferMinutes
	if buffer < 0 {
		buffer = 0
	}
	available := subtractBookedTimes(slots, bookings, buffer)

	uc.logger.Info("GetAvailability: %d of %d slots available on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		DayName:        dayName,
		AvailableTimes: available,
	}, nil
}

func (uc *UseCase) blockedResponse(date time.Time, dayName string, reason *string) *Response {
	return &Response{
		Date:           date,
		DayName:        dayName,
		Blocked:        true,
		BlockedReason:  reason,
		AvailableTimes: []types.TimeString{},
	}
}
