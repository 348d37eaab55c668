package create_flexible_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("create_flexible_booking: turf not found")

	// ErrFieldConfigNotFound возвращается для неизвестной конфигурации поля
	ErrFieldConfigNotFound = errors.New("create_flexible_booking: field configuration not found")

	// ErrInvalidTimeRange возвращается при некорректном диапазоне времени
	ErrInvalidTimeRange = errors.New("create_flexible_booking: invalid time range")

	// ErrOutsideOperatingHours возвращается, когда диапазон выходит за окно работы площадки
	ErrOutsideOperatingHours = errors.New("create_flexible_booking: range outside operating hours")

	// ErrTooSoon возвращается, когда начало диапазона не имеет минимального запаса времени
	ErrTooSoon = errors.New("create_flexible_booking: range starts too soon")

	// ErrDateOutOfRange возвращается для даты вне горизонта бронирования
	ErrDateOutOfRange = errors.New("create_flexible_booking: date outside booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_flexible_booking: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_flexible_booking: internal error")
)
