package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrDateInPast возвращается при попытке переноса на прошедшую дату
	ErrDateInPast = errors.New("scheduled date is in the past")

	// ErrDateBlocked возвращается при переносе на заблокированную дату
	ErrDateBlocked = errors.New("date is not available for booking")

	// ErrSlotTaken возвращается, когда целевой слот уже занят
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
