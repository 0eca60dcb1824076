package delete_schedule_entry

import "context"

type ScheduleService interface {
	DeactivateSlotRule(ctx context.Context, id string) error
	UnblockDate(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
