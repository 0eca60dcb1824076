package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovalogics-art/booking-service/internal/domain"
	bookingRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/booking"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	"github.com/inovalogics-art/booking-service/internal/service/bookings/models"
	"github.com/inovalogics-art/booking-service/pkg/ptr"
)

// Service административный сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List получает список бронирований с фильтрацией по статусу, дате и email
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Update частично обновляет бронирование.
// Смена статуса проходит через таблицу допустимых переходов, перенос
// на другой слот повторяет проверки создания: дата не в прошлом,
// не заблокирована и слот свободен. Все проверки и запись идут в
// одной транзакции.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid request for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if upd.IsEmpty() {
		s.logger.Warn("Update: empty update for booking id=%s", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Update - fetch booking: %v", ErrInternal, err)
		}

		if upd.Status != nil && !booking.CanTransitionTo(*upd.Status) {
			s.logger.Warn("Update: transition %s -> %s not allowed for booking id=%s",
				booking.Status, *upd.Status, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, *upd.Status)
		}

		if upd.IsReschedule() {
			if err := s.validateReschedule(txCtx, booking, upd); err != nil {
				return err
			}
		}

		updated, err := s.bookingRepo.Update(txCtx, id, upd)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		s.logError("Update", id, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование, освобождая его слот
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	reason := domain.DefaultCancellationNote
	if req != nil && req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - fetch booking: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(domain.StatusCancelled) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
		}

		upd := domain.BookingUpdate{
			Status: ptr.Ptr(domain.StatusCancelled),
			Notes:  &reason,
		}

		updated, err := s.bookingRepo.Update(txCtx, id, upd)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		s.logError("Cancel", id, err)
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(result), nil
}

// Delete физически удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Stats возвращает агрегированные счетчики бронирований по статусам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &domain.BookingStats{
		Pending:   counts[domain.StatusPending],
		Confirmed: counts[domain.StatusConfirmed],
		Completed: counts[domain.StatusCompleted],
		Cancelled: counts[domain.StatusCancelled],
	}
	for _, count := range counts {
		stats.Total += count
	}

	return models.FromDomainStats(stats), nil
}

// validateReschedule повторяет проверки создания для нового слота
func (s *Service) validateReschedule(ctx context.Context, booking *domain.Booking, upd domain.BookingUpdate) error {
	now := s.timeProvider.Now()

	if domain.IsDatePast(*upd.ScheduledDate, now) {
		return ErrDateInPast
	}

	blocked, err := s.scheduleRepo.GetBlockedDateByDate(ctx, *upd.ScheduledDate)
	if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
		return fmt.Errorf("%w: validateReschedule - check blocked date: %v", ErrInternal, err)
	}
	if blocked != nil {
		return ErrDateBlocked
	}

	taken, err := s.bookingRepo.ExistsActiveAt(ctx, *upd.ScheduledDate, *upd.ScheduledTime, &booking.ID)
	if err != nil {
		return fmt.Errorf("%w: validateReschedule - check slot: %v", ErrInternal, err)
	}
	if taken {
		return ErrSlotTaken
	}

	return nil
}

func (s *Service) logError(op, id string, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrDateInPast),
		errors.Is(err, ErrDateBlocked),
		errors.Is(err, ErrSlotTaken):
		s.logger.Warn("%s: booking id=%s: %v", op, id, err)
	default:
		s.logger.Error("%s: booking id=%s: %v", op, id, err)
	}
}
