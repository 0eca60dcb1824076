package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrDateBlocked возвращается, когда дата закрыта для бронирований
	ErrDateBlocked = errors.New("date is not available for booking")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
