package create_booking

import (
	"time"

	"github.com/inovalogics-art/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CategoryID *string

	Name    string
	Email   string
	Phone   *string
	Company *string

	Date        time.Time        // Дата бронирования (без времени)
	Time        types.TimeString // Время начала слота
	Timezone    string           // Пустая строка = дефолтная таймзона
	MeetingType string           // Пустая строка = дефолтный тип встречи

	Message *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string
	CategoryID *string

	Name    string
	Email   string
	Phone   *string
	Company *string

	ScheduledDate time.Time
	ScheduledTime types.TimeString
	Timezone      string
	MeetingType   string

	Message *string
	Status  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
