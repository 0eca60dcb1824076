package create_booking

import (
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
	createBooking "github.com/inovalogics-art/booking-service/internal/usecase/create_booking"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CategoryID *string `json:"category_id,omitempty"`

	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=30,phonepattern"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=100"`

	Date        string `json:"date" validate:"required,dateformat"`
	Time        string `json:"time" validate:"required,timeslot"`
	Timezone    string `json:"timezone,omitempty"`
	MeetingType string `json:"meeting_type,omitempty" validate:"omitempty,oneof=video phone in_person"`

	Message *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	CategoryID *string `json:"category_id,omitempty"`

	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`

	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Timezone      string `json:"timezone"`
	MeetingType   string `json:"meeting_type"`

	Message *string `json:"message,omitempty"`
	Status  string  `json:"status"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.ParseTimeString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		Date:        date,
		Time:        slot,
		Timezone:    r.Timezone,
		MeetingType: r.MeetingType,
		Message:     r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CategoryID:    resp.CategoryID,
		Name:          resp.Name,
		Email:         resp.Email,
		Phone:         resp.Phone,
		Company:       resp.Company,
		ScheduledDate: resp.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime: string(resp.ScheduledTime),
		Timezone:      resp.Timezone,
		MeetingType:   resp.MeetingType,
		Message:       resp.Message,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
