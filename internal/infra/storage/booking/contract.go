package booking

import (
	"github.com/inovalogics-art/booking-service/pkg/txmanager"
)

// Переиспользуем интерфейс исполнителя запросов из txmanager,
// чтобы репозиторий одинаково работал с *sql.DB и активной транзакцией.
type DBExecutor = txmanager.Executor
