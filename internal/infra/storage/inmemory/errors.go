package inmemory

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("inmemory.ledger: booking not found")

	// ErrInvalidBooking возвращается при попытке зафиксировать невалидное бронирование
	ErrInvalidBooking = errors.New("inmemory.ledger: invalid booking")
)
