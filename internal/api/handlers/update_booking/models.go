package update_booking

import "github.com/inovalogics-art/booking-service/internal/service/bookings/models"

// UpdateBookingRequest HTTP request model; ID приходит в теле
type UpdateBookingRequest struct {
	ID string `json:"id" validate:"required,uuid4"`

	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	ScheduledDate *string `json:"scheduled_date,omitempty" validate:"omitempty,dateformat"`
	ScheduledTime *string `json:"scheduled_time,omitempty" validate:"omitempty,timeslot"`
	MeetingType   *string `json:"meeting_type,omitempty" validate:"omitempty,oneof=video phone in_person"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Status:        r.Status,
		Notes:         r.Notes,
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
		MeetingType:   r.MeetingType,
	}
}
