package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/inovalogics-art/booking-service/internal/domain"
	scheduleRepo "github.com/inovalogics-art/booking-service/internal/infra/storage/schedule"
	"github.com/inovalogics-art/booking-service/internal/service/schedule/models"
	"github.com/inovalogics-art/booking-service/pkg/ptr"
)

// Service административный сервис для управления расписанием
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetSchedule возвращает полный срез расписания: все правила (включая
// неактивные) и все блокировки дат
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	rules, err := s.scheduleRepo.ListSlotRules(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list slot rules: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list slot rules: %v", ErrInternal, err)
	}

	blocked, err := s.scheduleRepo.ListBlockedDates(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list blocked dates: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list blocked dates: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(rules, blocked), nil
}

// AddSlotRule добавляет правило расписания на день недели
func (s *Service) AddSlotRule(ctx context.Context, req *models.AddSlotRuleRequest) (*models.SlotRuleResponse, error) {
	rule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("AddSlotRule: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !rule.StartTime.IsBefore(rule.EndTime) {
		s.logger.Warn("AddSlotRule: start %s is not before end %s", rule.StartTime, rule.EndTime)
		return nil, ErrInvalidTimeRange
	}

	created, err := s.scheduleRepo.CreateSlotRule(ctx, rule)
	if err != nil {
		s.logger.Error("AddSlotRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSlotRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlotRule: created rule id=%s day=%d %s-%s",
		created.ID, created.DayOfWeek, created.StartTime, created.EndTime)
	return models.FromDomainSlotRule(created), nil
}

// UpdateSlotRule частично обновляет правило расписания.
// Итоговое окно после применения изменений обязано остаться корректным.
func (s *Service) UpdateSlotRule(ctx context.Context, id string, req *models.UpdateSlotRuleRequest) (*models.SlotRuleResponse, error) {
	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("UpdateSlotRule: invalid request for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	current, err := s.scheduleRepo.GetSlotRuleByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotRuleNotFound) {
			s.logger.Warn("UpdateSlotRule: rule id=%s not found", id)
			return nil, ErrSlotRuleNotFound
		}
		s.logger.Error("UpdateSlotRule: failed to fetch rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSlotRule - fetch rule: %v", ErrInternal, err)
	}

	start := current.StartTime
	if upd.StartTime != nil {
		start = *upd.StartTime
	}
	end := current.EndTime
	if upd.EndTime != nil {
		end = *upd.EndTime
	}
	if !start.IsBefore(end) {
		s.logger.Warn("UpdateSlotRule: start %s is not before end %s for rule id=%s", start, end, id)
		return nil, ErrInvalidTimeRange
	}

	updated, err := s.scheduleRepo.UpdateSlotRule(ctx, id, upd)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotRuleNotFound) {
			return nil, ErrSlotRuleNotFound
		}
		s.logger.Error("UpdateSlotRule: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSlotRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSlotRule: updated rule id=%s", id)
	return models.FromDomainSlotRule(updated), nil
}

// DeactivateSlotRule выключает правило, не удаляя его.
// Повторная деактивация уже выключенного правила проходит успешно.
func (s *Service) DeactivateSlotRule(ctx context.Context, id string) error {
	upd := domain.SlotRuleUpdate{IsActive: ptr.Ptr(false)}

	if _, err := s.scheduleRepo.UpdateSlotRule(ctx, id, upd); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotRuleNotFound) {
			s.logger.Warn("DeactivateSlotRule: rule id=%s not found", id)
			return ErrSlotRuleNotFound
		}
		s.logger.Error("DeactivateSlotRule: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: DeactivateSlotRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateSlotRule: deactivated rule id=%s", id)
	return nil
}

// BlockDate закрывает дату для бронирований
func (s *Service) BlockDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error) {
	blocked, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("BlockDate: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.scheduleRepo.GetBlockedDateByDate(ctx, blocked.Date)
	if err != nil && !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
		s.logger.Error("BlockDate: failed to check existing block: %v", err)
		return nil, fmt.Errorf("%w: BlockDate - check existing block: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("BlockDate: date %s is already blocked", req.Date)
		return nil, ErrDateAlreadyBlocked
	}

	created, err := s.scheduleRepo.CreateBlockedDate(ctx, blocked)
	if err != nil {
		s.logger.Error("BlockDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDate: blocked date %s id=%s", req.Date, created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// UnblockDate снимает блокировку даты
func (s *Service) UnblockDate(ctx context.Context, id string) error {
	if err := s.scheduleRepo.DeleteBlockedDate(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("UnblockDate: blocked date id=%s not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("UnblockDate: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockDate: removed blocked date id=%s", id)
	return nil
}
