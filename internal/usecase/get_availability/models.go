package get_availability

import (
	"time"

	"github.com/inovalogics-art/booking-service/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	Date          time.Time // Дата, на которую запрашиваются слоты (без времени)
	BufferMinutes int       // Пауза вокруг занятых слотов; 0 выключает её
}

// Response модель ответа со свободными временами на дату
type Response struct {
	Date           time.Time          // Запрошенная дата
	DayName        string             // Название дня недели ("Monday", ...)
	Blocked        bool               // true, если дата заблокирована или уже прошла
	BlockedReason  *string            // Причина блокировки, если задана
	AvailableTimes []types.TimeString // Свободные времена в порядке возрастания
}
