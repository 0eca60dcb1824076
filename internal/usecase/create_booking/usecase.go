package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovalogics-art/booking-service/internal/domain"
	bookingRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка блокировки даты и вставка идут в сериализуемой транзакции;
// занятость самого слота гарантирует уникальный индекс в БД, так что
// гонка двух вставок на один слот разрешается на стороне PostgreSQL.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s",
		req.Email, req.Date.Format(domain.DateFormat), req.Time)

	now := uc.timeProvider.Now()

	// 2. Прошедшая дата отклоняется до обращения к БД
	if domain.IsDatePast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Канонизируем время к формату HH:MM:SS
	slotTime, err := req.Time.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	meetingType := domain.DefaultMeetingType
	if req.MeetingType != "" {
		meetingType, _ = domain.ParseMeetingType(req.MeetingType)
	}

	var result *domain.Booking

	// 4. Блокировка даты и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем, что дата не закрыта для бронирований
		blocked, err := uc.scheduleRepo.GetBlockedDateByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			uc.logger.Error("CreateBooking: failed to check blocked date: %v", err)
			return fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
		}
		if blocked != nil {
			uc.logger.Warn("CreateBooking: date %s is blocked", req.Date.Format(domain.DateFormat))
			return ErrDateBlocked
		}

		// 4.2. Вставляем бронирование; конфликт слота приходит из БД как ErrSlotTaken
		booking := &domain.Booking{
			CategoryID:    req.CategoryID,
			Name:          req.Name,
			Email:         req.Email,
			Phone:         req.Phone,
			Company:       req.Company,
			ScheduledDate: req.Date,
			ScheduledTime: slotTime,
			Timezone:      timezone,
			MeetingType:   meetingType,
			Message:       req.Message,
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s already taken",
					req.Date.Format(domain.DateFormat), slotTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:            result.ID,
		CategoryID:    result.CategoryID,
		Name:          result.Name,
		Email:         result.Email,
		Phone:         result.Phone,
		Company:       result.Company,
		ScheduledDate: result.ScheduledDate,
		ScheduledTime: result.ScheduledTime,
		Timezone:      result.Timezone,
		MeetingType:   string(result.MeetingType),
		Message:       result.Message,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
