package schedule

import (
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.Executor
