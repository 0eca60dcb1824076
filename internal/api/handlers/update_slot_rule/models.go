package update_slot_rule

import "github.com/inovalogics-art/booking-service/internal/service/schedule/models"

// UpdateSlotRuleRequest HTTP request model; ID приходит в теле
type UpdateSlotRuleRequest struct {
	ID string `json:"id" validate:"required,uuid4"`

	DayOfWeek *int    `json:"day_of_week,omitempty" validate:"omitempty,gte=0,lte=6"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,timeslot"`
	EndTime   *string `json:"end_time,omitempty" validate:"omitempty,timeslot"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRuleRequest) ToServiceRequest() *models.UpdateSlotRuleRequest {
	return &models.UpdateSlotRuleRequest{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsActive:  r.IsActive,
	}
}
