package models

import (
	"errors"
	"time"

	"github.com/inovalogics-art/booking-service/internal/domain"
	"github.com/inovalogics-art/booking-service/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidMeetingType возвращается при некорректном типе встречи
	ErrInvalidMeetingType = errors.New("invalid meeting type")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Date   *string `json:"date,omitempty"`   // Фильтр по дате "2026-01-15" (опционально)
	Email  *string `json:"email,omitempty"`  // Поиск по подстроке email (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	filter.Email = r.Email

	return filter, nil
}

// UpdateBookingRequest запрос на частичное обновление бронирования
type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	MeetingType   *string `json:"meeting_type,omitempty"`
}

// ToDomainUpdate конвертирует request в domain обновление
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	var upd domain.BookingUpdate

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return upd, ErrInvalidStatus
		}
		upd.Status = &status
	}

	upd.Notes = r.Notes

	if r.ScheduledDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.ScheduledDate)
		if err != nil {
			return upd, ErrInvalidDate
		}
		upd.ScheduledDate = &date
	}

	if r.ScheduledTime != nil {
		slot, err := types.ParseTimeString(*r.ScheduledTime)
		if err != nil {
			return upd, ErrInvalidTime
		}
		normalized, err := slot.Normalize()
		if err != nil {
			return upd, ErrInvalidTime
		}
		upd.ScheduledTime = &normalized
	}

	if r.MeetingType != nil {
		mt, ok := domain.ParseMeetingType(*r.MeetingType)
		if !ok {
			return upd, ErrInvalidMeetingType
		}
		upd.MeetingType = &mt
	}

	return upd, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string  `json:"id"`
	CategoryID *string `json:"category_id,omitempty"`

	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`

	ScheduledDate string `json:"scheduled_date"` // "2026-01-15"
	ScheduledTime string `json:"scheduled_time"` // "10:00:00"
	Timezone      string `json:"timezone"`
	MeetingType   string `json:"meeting_type"`

	Message *string `json:"message,omitempty"`
	Status  string  `json:"status"`
	Notes   *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatsResponse агрегированные счетчики бронирований
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		CategoryID:    b.CategoryID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Company:       b.Company,
		ScheduledDate: b.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime: string(b.ScheduledTime),
		Timezone:      b.Timezone,
		MeetingType:   string(b.MeetingType),
		Message:       b.Message,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}

// FromDomainStats конвертирует domain статистику в response
func FromDomainStats(s *domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Confirmed: s.Confirmed,
		Completed: s.Completed,
		Cancelled: s.Cancelled,
	}
}
