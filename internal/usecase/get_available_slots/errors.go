package get_available_slots

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("get_available_slots: turf not found")

	// ErrFieldConfigNotFound возвращается для неизвестной конфигурации поля
	ErrFieldConfigNotFound = errors.New("get_available_slots: field configuration not found")

	// ErrDateOutOfRange возвращается для даты вне горизонта бронирования
	ErrDateOutOfRange = errors.New("get_available_slots: date outside booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots: internal error")
)
