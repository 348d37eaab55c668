package selection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

// Session сессия выбора слотов для одной площадки.
// Накапливает выбранные часы и пересчитывает стоимость; смена даты или
// конфигурации поля сбрасывает выбор, потому что занятость и цены меняются.
// Сессия не потокобезопасна: одна сессия - один пользовательский поток.
type Session struct {
	turf        *domain.Turf
	fieldConfig domain.FieldConfiguration
	date        time.Time

	selected map[int]struct{}

	ledger AvailabilityLedger
	clock  TimeProvider
}

// NewSession создает сессию выбора для площадки, конфигурации поля и даты
func NewSession(
	turf *domain.Turf,
	fieldConfigID int64,
	date time.Time,
	ledger AvailabilityLedger,
	clock TimeProvider,
) (*Session, error) {
	if err := turf.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	cfg, ok := turf.FieldConfigurationByID(fieldConfigID)
	if !ok {
		return nil, ErrFieldConfigNotFound
	}

	s := &Session{
		turf:        turf,
		fieldConfig: cfg,
		date:        truncateToDay(date),
		selected:    make(map[int]struct{}),
		ledger:      ledger,
		clock:       clock,
	}

	if err := s.validateDate(s.date); err != nil {
		return nil, err
	}

	return s, nil
}

// Toggle переключает выбор часа.
// Снятие выбора разрешено всегда; добавление проходит проверки занятости
// и минимального запаса времени.
func (s *Session) Toggle(ctx context.Context, hour int) error {
	if _, ok := s.selected[hour]; ok {
		delete(s.selected, hour)
		return nil
	}

	if !s.turf.OperatingWindow.ContainsHour(hour) {
		return ErrSlotOutsideWindow
	}

	bookings, err := s.ledger.ListForDate(ctx, s.turf.ID, s.dateString())
	if err != nil {
		return fmt.Errorf("%w: Toggle - ledger error: %v", ErrInternal, err)
	}

	var coveredByFlexible bool
	for _, b := range bookings {
		if !b.CoversHour(hour) {
			continue
		}
		if b.Type == domain.TypeSlots {
			return ErrSlotAlreadyBooked
		}
		coveredByFlexible = true
	}

	if s.isTooSoon(hour) {
		return ErrSlotTooSoon
	}

	if coveredByFlexible {
		return ErrSlotInFlexibleRange
	}

	s.selected[hour] = struct{}{}
	return nil
}

// ChangeFieldConfiguration переключает конфигурацию поля и сбрасывает выбор
func (s *Session) ChangeFieldConfiguration(fieldConfigID int64) error {
	cfg, ok := s.turf.FieldConfigurationByID(fieldConfigID)
	if !ok {
		return ErrFieldConfigNotFound
	}

	s.fieldConfig = cfg
	s.selected = make(map[int]struct{})
	return nil
}

// ChangeDate переключает дату и сбрасывает выбор
func (s *Session) ChangeDate(date time.Time) error {
	date = truncateToDay(date)
	if err := s.validateDate(date); err != nil {
		return err
	}

	s.date = date
	s.selected = make(map[int]struct{})
	return nil
}

// SelectedHours возвращает выбранные часы по возрастанию
func (s *Session) SelectedHours() []int {
	hours := make([]int, 0, len(s.selected))
	for h := range s.selected {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// RunningTotal возвращает текущую стоимость выбора по тарифам конфигурации
func (s *Session) RunningTotal() float64 {
	return domain.TotalForHours(s.SelectedHours(), s.fieldConfig)
}

// IsEmpty сообщает, что в сессии ничего не выбрано
func (s *Session) IsEmpty() bool {
	return len(s.selected) == 0
}

// Turf возвращает площадку сессии
func (s *Session) Turf() *domain.Turf {
	return s.turf
}

// FieldConfig возвращает активную конфигурацию поля
func (s *Session) FieldConfig() domain.FieldConfiguration {
	return s.fieldConfig
}

// Date возвращает дату сессии
func (s *Session) Date() time.Time {
	return s.date
}

// isTooSoon применяет правило минимального запаса для бронирований на сегодня.
// Прошедшие часы и текущий час недоступны; следующий час недоступен,
// если до его начала осталось меньше 30 минут.
func (s *Session) isTooSoon(hour int) bool {
	now := s.clock.Now()
	if !sameDay(s.date, now) {
		return false
	}

	switch {
	case hour < now.Hour():
		return true
	case hour == now.Hour():
		return true
	case hour == now.Hour()+1 && now.Minute() > domain.MinLeadTimeMinutes:
		return true
	default:
		return false
	}
}

// validateDate проверяет, что дата попадает в горизонт бронирования
func (s *Session) validateDate(date time.Time) error {
	today := truncateToDay(s.clock.Now())
	latest := today.AddDate(0, 0, domain.MaxAdvanceBookingDays)

	if date.Before(today) || date.After(latest) {
		return fmt.Errorf("%w: date=%s", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	return nil
}

func (s *Session) dateString() string {
	return s.date.Format(domain.DateFormat)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
