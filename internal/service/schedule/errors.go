package schedule

import "errors"

var (
	// ErrSlotRuleNotFound возвращается, когда правило расписания не найдено
	ErrSlotRuleNotFound = errors.New("slot rule not found")

	// ErrBlockedDateNotFound возвращается, когда блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("date is already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
