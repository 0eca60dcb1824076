package domain

import (
	"time"

	"github.com/inovalogics-art/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// MeetingType represents how the appointment is held
type MeetingType string

const (
	MeetingVideo    MeetingType = "video"
	MeetingPhone    MeetingType = "phone"
	MeetingInPerson MeetingType = "in_person"
)

// Booking represents a single scheduled appointment
type Booking struct {
	ID         string
	CategoryID *string

	Name    string
	Email   string
	Phone   *string
	Company *string

	ScheduledDate time.Time
	ScheduledTime types.TimeString // канонический формат "HH:MM:SS"
	Timezone      string           // текстовая метка для отображения, без конвертаций
	MeetingType   MeetingType

	Message *string
	Status  BookingStatus
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking still occupies its slot.
// Только отмена освобождает слот: completed и no_show остаются занятыми
// в истории, их дата все равно уже в прошлом.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// statusTransitions задает допустимые переходы статусов.
// pending → confirmed/cancelled; confirmed → completed/cancelled/no_show;
// completed, cancelled и no_show — терминальные.
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransitionTo returns true if the status change is allowed.
// Переход в тот же статус разрешен, чтобы повторный PUT был идемпотентным.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == next {
		return true
	}
	for _, allowed := range statusTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseBookingStatus валидирует строковый статус
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return status, true
	}
	return "", false
}

// ParseMeetingType валидирует строковый тип встречи
func ParseMeetingType(s string) (MeetingType, bool) {
	mt := MeetingType(s)
	switch mt {
	case MeetingVideo, MeetingPhone, MeetingInPerson:
		return mt, true
	}
	return "", false
}

// BookingFilter фильтр для админского списка бронирований
type BookingFilter struct {
	Status *BookingStatus // Фильтр по статусу (опционально)
	Date   *time.Time     // Фильтр по дате (опционально)
	Email  *string        // Регистронезависимый поиск по подстроке (опционально)
}

// BookingUpdate частичное обновление бронирования; nil-поля не трогаются
type BookingUpdate struct {
	Status        *BookingStatus
	Notes         *string
	ScheduledDate *time.Time
	ScheduledTime *types.TimeString
	MeetingType   *MeetingType
}

// IsReschedule returns true if the update moves the booking to a new slot
func (u *BookingUpdate) IsReschedule() bool {
	return u.ScheduledDate != nil && u.ScheduledTime != nil
}

// IsEmpty returns true if the update contains no fields
func (u *BookingUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil && u.ScheduledDate == nil &&
		u.ScheduledTime == nil && u.MeetingType == nil
}

// BookingStats агрегированные счетчики по статусам
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
}
