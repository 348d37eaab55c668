package domain

// Временные ограничения бронирования
const (
	// MinLeadTimeMinutes минимальный запас до начала слота при бронировании на сегодня
	MinLeadTimeMinutes = 30

	// MaxAdvanceBookingDays горизонт бронирования вперёд
	MaxAdvanceBookingDays = 7
)

// DateFormat формат календарной даты бронирования
const DateFormat = "2006-01-02" // YYYY-MM-DD

// InactiveStatuses статусы, не занимающие слоты
// Используются при фильтрации записей для подсчёта доступности
var InactiveStatuses = []PaymentStatus{
	StatusCancelled,
	StatusFailed,
	StatusRefunded,
}
