package selection

import "errors"

var (
	// ErrSlotAlreadyBooked возвращается при попытке выбрать занятый слот
	ErrSlotAlreadyBooked = errors.New("selection.session: slot already booked")

	// ErrSlotTooSoon возвращается для прошедших слотов и слотов без минимального запаса времени
	ErrSlotTooSoon = errors.New("selection.session: slot is in the past or starts too soon")

	// ErrSlotInFlexibleRange возвращается, когда час перекрыт гибким бронированием
	ErrSlotInFlexibleRange = errors.New("selection.session: slot overlaps a flexible booking")

	// ErrSlotOutsideWindow возвращается для часа вне окна работы площадки
	ErrSlotOutsideWindow = errors.New("selection.session: slot outside operating hours")

	// ErrFieldConfigNotFound возвращается для неизвестной конфигурации поля
	ErrFieldConfigNotFound = errors.New("selection.session: field configuration not found")

	// ErrDateOutOfRange возвращается для даты вне горизонта бронирования
	ErrDateOutOfRange = errors.New("selection.session: date outside booking window")

	// ErrInternal возвращается при внутренних ошибках сессии
	ErrInternal = errors.New("selection.session: internal error")
)
