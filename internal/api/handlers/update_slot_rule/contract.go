package update_slot_rule

import (
	"context"

	"github.com/inovalogics-art/booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSlotRule(ctx context.Context, id string, req *models.UpdateSlotRuleRequest) (*models.SlotRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
