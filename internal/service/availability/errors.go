package availability

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("availability.service: booking not found")

	// ErrInvalidBooking возвращается при попытке зафиксировать невалидную запись
	ErrInvalidBooking = errors.New("availability.service: invalid booking")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability.service: internal error")
)
