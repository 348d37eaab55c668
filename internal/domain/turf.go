package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperatingWindow возвращается при некорректном окне работы площадки
	ErrInvalidOperatingWindow = errors.New("domain: invalid operating window")

	// ErrInvalidPrice возвращается при неположительной цене конфигурации поля
	ErrInvalidPrice = errors.New("domain: price must be positive")

	// ErrNoFieldConfigurations возвращается для площадки без конфигураций полей
	ErrNoFieldConfigurations = errors.New("domain: turf has no field configurations")
)

// OperatingWindow окно работы площадки по часам
// При IsContinuous24h бронируются все 24 часа, окно заворачивается через полночь
type OperatingWindow struct {
	StartHour       int
	EndHour         int
	IsContinuous24h bool
}

// Validate проверяет инварианты окна работы
func (w OperatingWindow) Validate() error {
	if w.IsContinuous24h {
		return nil
	}
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return fmt.Errorf("%w: hours must be within 0-23", ErrInvalidOperatingWindow)
	}
	if w.StartHour > w.EndHour {
		return fmt.Errorf("%w: startHour must not exceed endHour", ErrInvalidOperatingWindow)
	}
	return nil
}

// ContainsHour сообщает, попадает ли час в окно работы
func (w OperatingWindow) ContainsHour(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	if w.IsContinuous24h {
		return true
	}
	return hour >= w.StartHour && hour <= w.EndHour
}

// TieredPrices тарифные цены конфигурации поля по времени суток
// Каждая заданная цена перекрывает базовую для слотов своего диапазона
type TieredPrices struct {
	DayPrice   *float64
	NightPrice *float64
	PeakPrice  *float64
}

// FieldConfiguration покупаемая конфигурация поля на площадке (например, "7x7")
type FieldConfiguration struct {
	ID        int64
	Name      string
	BasePrice float64
	Pricing   TieredPrices
}

// Validate проверяет ценовые инварианты конфигурации
func (c FieldConfiguration) Validate() error {
	if c.BasePrice <= 0 {
		return fmt.Errorf("%w: basePrice", ErrInvalidPrice)
	}
	for name, p := range map[string]*float64{
		"dayPrice":   c.Pricing.DayPrice,
		"nightPrice": c.Pricing.NightPrice,
		"peakPrice":  c.Pricing.PeakPrice,
	} {
		if p != nil && *p <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPrice, name)
		}
	}
	return nil
}

// Turf футбольная площадка из каталога
type Turf struct {
	ID                  int64
	OwnerID             int64
	Name                string
	Location            string
	OperatingWindow     OperatingWindow
	FieldConfigurations []FieldConfiguration
}

// Validate проверяет, что площадка пригодна для бронирования
func (t *Turf) Validate() error {
	if err := t.OperatingWindow.Validate(); err != nil {
		return err
	}
	if len(t.FieldConfigurations) == 0 {
		return ErrNoFieldConfigurations
	}
	for _, cfg := range t.FieldConfigurations {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FieldConfigurationByID ищет конфигурацию поля по её ID
func (t *Turf) FieldConfigurationByID(id int64) (FieldConfiguration, bool) {
	for _, cfg := range t.FieldConfigurations {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return FieldConfiguration{}, false
}
