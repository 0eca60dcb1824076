package create_schedule_entry

// Типы записей расписания
const (
	EntryTypeSlot        = "slot"
	EntryTypeBlockedDate = "blocked_date"
)

// CreateScheduleEntryRequest HTTP request model.
// Одна ручка создает и правила слотов, и блокировки дат; поля
// зависят от типа записи.
type CreateScheduleEntryRequest struct {
	Type string `json:"type" validate:"required,oneof=slot blocked_date"`

	// Поля для type=slot
	DayOfWeek *int    `json:"day_of_week,omitempty" validate:"omitempty,gte=0,lte=6"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,timeslot"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,timeslot"`
	IsActive  *bool   `json:"is_active,omitempty"` // nil = активно

	// Поля для type=blocked_date
	Date   *string `json:"date,omitempty" validate:"omitempty,dateformat"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}
