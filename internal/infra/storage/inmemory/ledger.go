package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

// Ledger потокобезопасный in-memory реестр занятости слотов.
// Эталонная реализация с теми же семантиками, что и у Postgres-версии:
// атомарная фиксация "все или ничего", идемпотентность по booking_id,
// идемпотентная отмена. Используется в тестах и для локальной разработки.
type Ledger struct {
	mu sync.Mutex

	// byDay индексирует бронирования по ключу "turf:date"
	byDay map[string][]*domain.Booking
	// byID индексирует бронирования по booking_id
	byID map[string]*domain.Booking

	now func() time.Time
}

// NewLedger создает пустой реестр
func NewLedger() *Ledger {
	return &Ledger{
		byDay: make(map[string][]*domain.Booking),
		byID:  make(map[string]*domain.Booking),
		now:   time.Now,
	}
}

// NewLedgerWithClock создает реестр с переопределенным источником времени
func NewLedgerWithClock(now func() time.Time) *Ledger {
	l := NewLedger()
	l.now = now
	return l
}

func dayKey(turfID int64, date string) string {
	return fmt.Sprintf("%d:%s", turfID, date)
}

// IsBooked проверяет, занят ли час площадки активным бронированием.
// Занятость не зависит от конфигурации поля: физическое поле одно,
// и час, занятый под одну конфигурацию, недоступен для всех остальных.
func (l *Ledger) IsBooked(ctx context.Context, turfID int64, date string, hour int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.byDay[dayKey(turfID, date)] {
		if b.OccupiesSlots() && b.CoversHour(hour) {
			return true, nil
		}
	}

	return false, nil
}

// ListForDate возвращает активные бронирования площадки на дату
func (l *Ledger) ListForDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []*domain.Booking
	for _, b := range l.byDay[dayKey(turfID, date)] {
		if b.OccupiesSlots() {
			copied := *b
			result = append(result, &copied)
		}
	}

	return result, nil
}

// Commit атомарно фиксирует бронирование.
// Либо все часы бронирования свободны и запись сохраняется, либо
// возвращается SlotConflictError с полным списком занятых часов.
// Повторный вызов с тем же booking_id завершается успешно без изменений.
func (l *Ledger) Commit(ctx context.Context, b *domain.Booking) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Идемпотентность: запись с таким booking_id уже зафиксирована
	if _, ok := l.byID[b.BookingID]; ok {
		return nil
	}

	date := b.Date.Format(domain.DateFormat)
	key := dayKey(b.TurfID, date)

	var conflicts []int
	for _, hour := range b.CoveredHours() {
		for _, existing := range l.byDay[key] {
			if existing.OccupiesSlots() && existing.CoversHour(hour) {
				conflicts = append(conflicts, hour)
				break
			}
		}
	}

	if len(conflicts) > 0 {
		return domain.NewSlotConflictError(b.TurfID, b.FieldConfigID, date, conflicts)
	}

	stored := *b
	stored.CreatedAt = l.now()
	stored.UpdatedAt = stored.CreatedAt

	l.byDay[key] = append(l.byDay[key], &stored)
	l.byID[stored.BookingID] = &stored

	return nil
}

// Cancel освобождает слоты бронирования.
// Повторная отмена уже отмененного бронирования завершается успешно.
func (l *Ledger) Cancel(ctx context.Context, bookingID, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[bookingID]
	if !ok {
		return ErrBookingNotFound
	}

	if !b.OccupiesSlots() {
		return nil
	}

	if b.PaymentStatus == domain.StatusCompleted {
		b.PaymentStatus = domain.StatusRefunded
	} else {
		b.PaymentStatus = domain.StatusCancelled
	}

	now := l.now()
	b.CancellationReason = &reason
	b.CancelledAt = &now
	b.UpdatedAt = now

	return nil
}

// GetByBookingID возвращает копию бронирования по его идентификатору
func (l *Ledger) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[bookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	copied := *b
	return &copied, nil
}
