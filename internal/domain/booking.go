package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/sporzo/turf-booking-service/pkg/types"
)

var (
	// ErrInvalidBooking возвращается при нарушении инвариантов записи бронирования
	ErrInvalidBooking = errors.New("domain: invalid booking record")
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"   // оплата на месте, слоты заняты
	StatusCompleted PaymentStatus = "completed" // оплачено онлайн, слоты заняты
	StatusCancelled PaymentStatus = "cancelled"
	StatusFailed    PaymentStatus = "failed"
	StatusRefunded  PaymentStatus = "refunded"
)

// BookingType режим бронирования
type BookingType string

const (
	// TypeSlots дискретные часовые слоты
	TypeSlots BookingType = "slots"
	// TypeFlexible непрерывный произвольный диапазон времени
	// Параллельный, более грубый режим: хранится как пара начало/конец
	TypeFlexible BookingType = "flexible"
)

// OccupyingStatuses статусы, при которых бронирование занимает свои слоты
var OccupyingStatuses = []PaymentStatus{StatusPending, StatusCompleted}

// Booking закоммиченная запись бронирования - единица истины в журнале доступности
// Amount вычисляется в момент коммита и замораживается: позднейшие изменения
// тарифов на уже созданные записи не влияют
type Booking struct {
	BookingID     string // глобально уникальный, передаётся вызывающей стороной
	UserID        int64
	TurfID        int64
	FieldConfigID int64
	Date          time.Time // календарная дата, локальная для площадки
	Type          BookingType

	// Для Type == TypeSlots
	SlotHours []int

	// Для Type == TypeFlexible: диапазон [FlexStartTime, FlexEndTime)
	FlexStartTime *types.TimeString
	FlexEndTime   *types.TimeString

	Amount        float64
	PaymentStatus PaymentStatus
	PaymentRef    *string // id транзакции платёжного провайдера

	// Денормализованные данные клиента для истории и владельца
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет запись при конструировании
func (b *Booking) Validate() error {
	if b.BookingID == "" {
		return fmt.Errorf("%w: empty booking id", ErrInvalidBooking)
	}
	if b.TurfID <= 0 {
		return fmt.Errorf("%w: turf id must be positive", ErrInvalidBooking)
	}
	if b.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidBooking)
	}

	switch b.Type {
	case TypeSlots:
		if len(b.SlotHours) == 0 {
			return fmt.Errorf("%w: slot hours must not be empty", ErrInvalidBooking)
		}
		for _, h := range b.SlotHours {
			if h < 0 || h > 23 {
				return fmt.Errorf("%w: slot hour %d out of range", ErrInvalidBooking, h)
			}
		}
	case TypeFlexible:
		if b.FlexStartTime == nil || b.FlexEndTime == nil {
			return fmt.Errorf("%w: flexible booking requires start and end times", ErrInvalidBooking)
		}
		if !b.FlexStartTime.IsBefore(*b.FlexEndTime) {
			return fmt.Errorf("%w: flexible end time must be after start time", ErrInvalidBooking)
		}
	default:
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidBooking, b.Type)
	}

	switch b.PaymentStatus {
	case StatusPending, StatusCompleted, StatusCancelled, StatusFailed, StatusRefunded:
	default:
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidBooking, b.PaymentStatus)
	}

	return nil
}

// OccupiesSlots возвращает true, если запись занимает свои часы в журнале
// cancelled/failed/refunded записи слоты не занимают
func (b *Booking) OccupiesSlots() bool {
	return b.PaymentStatus == StatusPending || b.PaymentStatus == StatusCompleted
}

// CoversHour сообщает, покрывает ли запись указанный час
// Слотовое бронирование - принадлежность множеству часов,
// гибкое - попадание в полуоткрытый диапазон [start, end)
func (b *Booking) CoversHour(hour int) bool {
	switch b.Type {
	case TypeSlots:
		for _, h := range b.SlotHours {
			if h == hour {
				return true
			}
		}
		return false
	case TypeFlexible:
		if b.FlexStartTime == nil || b.FlexEndTime == nil {
			return false
		}
		startHour, err := b.FlexStartTime.Hour()
		if err != nil {
			return false
		}
		endHour, err := b.FlexEndTime.Hour()
		if err != nil {
			return false
		}
		return hour >= startHour && hour < endHour
	default:
		return false
	}
}

// CoveredHours возвращает часы, занимаемые записью
func (b *Booking) CoveredHours() []int {
	switch b.Type {
	case TypeSlots:
		return b.SlotHours
	case TypeFlexible:
		if b.FlexStartTime == nil || b.FlexEndTime == nil {
			return nil
		}
		startHour, err := b.FlexStartTime.Hour()
		if err != nil {
			return nil
		}
		endHour, err := b.FlexEndTime.Hour()
		if err != nil {
			return nil
		}
		hours := make([]int, 0, endHour-startHour)
		for h := startHour; h < endHour; h++ {
			hours = append(hours, h)
		}
		return hours
	default:
		return nil
	}
}

// IsCancelled возвращает true для отменённой записи
func (b *Booking) IsCancelled() bool {
	return b.PaymentStatus == StatusCancelled
}

// CanBeCancelled сообщает, можно ли отменить запись
func (b *Booking) CanBeCancelled() bool {
	return b.PaymentStatus == StatusPending || b.PaymentStatus == StatusCompleted
}

// TurfBookingsFilter фильтр выборки бронирований площадки (для владельца)
type TurfBookingsFilter struct {
	TurfID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *PaymentStatus
	IncludeInactive bool // включать ли cancelled/failed/refunded записи
}
