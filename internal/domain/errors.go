package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSlotNotAvailable возвращается, когда хотя бы один запрошенный слот уже занят
	ErrSlotNotAvailable = errors.New("domain: slot not available")

	// ErrBookingAlreadyCancelled возвращается при попытке отменить уже отмененное бронирование
	ErrBookingAlreadyCancelled = errors.New("domain: booking already cancelled")
)

// SlotConflictError описывает конфликт бронирования: какие именно часы заняты.
// Разворачивается в ErrSlotNotAvailable для проверки через errors.Is.
type SlotConflictError struct {
	TurfID        int64
	FieldConfigID int64
	Date          string
	Hours         []int
}

func (e *SlotConflictError) Error() string {
	hours := make([]string, len(e.Hours))
	for i, h := range e.Hours {
		hours[i] = fmt.Sprintf("%d", h)
	}
	return fmt.Sprintf("domain: slots [%s] not available for turf=%d field_config=%d date=%s",
		strings.Join(hours, ","), e.TurfID, e.FieldConfigID, e.Date)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}

// NewSlotConflictError создает ошибку конфликта с отсортированным списком часов
func NewSlotConflictError(turfID, fieldConfigID int64, date string, hours []int) *SlotConflictError {
	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	return &SlotConflictError{
		TurfID:        turfID,
		FieldConfigID: fieldConfigID,
		Date:          date,
		Hours:         sorted,
	}
}
