package create_schedule_entry

import (
	"context"

	"github.com/inovalogics-art/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	AddSlotRule(ctx context.Context, req *models.AddSlotRuleRequest) (*models.SlotRuleResponse, error)
	BlockDate(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
