package schedule

import "errors"

var (
	// ErrSlotRuleNotFound возвращается, когда правило расписания не найдено
	ErrSlotRuleNotFound = errors.New("schedule.repository: slot rule not found")

	// ErrBlockedDateNotFound возвращается, когда блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("schedule.repository: blocked date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
