package schedule

import (
	"context"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	CreateSlotRule(ctx context.Context, rule *domain.SlotRule) (*domain.SlotRule, error)
	GetSlotRuleByID(ctx context.Context, id string) (*domain.SlotRule, error)
	ListSlotRules(ctx context.Context) ([]*domain.SlotRule, error)
	UpdateSlotRule(ctx context.Context, id string, upd domain.SlotRuleUpdate) (*domain.SlotRule, error)
	CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	GetBlockedDateByDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
