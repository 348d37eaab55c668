package turfcatalog

import "github.com/sporzo/turf-booking-service/internal/domain"

// Turf модель площадки из каталога
type Turf struct {
	ID              int64                `json:"id"`
	OwnerID         int64                `json:"ownerId"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	OperatingWindow OperatingWindow      `json:"operatingHours"`
	FieldConfigs    []FieldConfiguration `json:"fieldConfigurations"`
}

// OperatingWindow окно работы площадки
type OperatingWindow struct {
	StartHour       int  `json:"start"`
	EndHour         int  `json:"end"`
	IsContinuous24h bool `json:"is24Hours"`
}

// FieldConfiguration конфигурация поля с тарифами
type FieldConfiguration struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	BasePrice  float64  `json:"price"`
	DayPrice   *float64 `json:"dayPrice,omitempty"`
	NightPrice *float64 `json:"nightPrice,omitempty"`
	PeakPrice  *float64 `json:"peakPrice,omitempty"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует модель каталога в доменную
func (t *Turf) ToDomain() *domain.Turf {
	configs := make([]domain.FieldConfiguration, len(t.FieldConfigs))
	for i, c := range t.FieldConfigs {
		configs[i] = domain.FieldConfiguration{
			ID:        c.ID,
			Name:      c.Name,
			BasePrice: c.BasePrice,
			Pricing: domain.TieredPrices{
				DayPrice:   c.DayPrice,
				NightPrice: c.NightPrice,
				PeakPrice:  c.PeakPrice,
			},
		}
	}

	return &domain.Turf{
		ID:       t.ID,
		OwnerID:  t.OwnerID,
		Name:     t.Name,
		Location: t.Location,
		OperatingWindow: domain.OperatingWindow{
			StartHour:       t.OperatingWindow.StartHour,
			EndHour:         t.OperatingWindow.EndHour,
			IsContinuous24h: t.OperatingWindow.IsContinuous24h,
		},
		FieldConfigurations: configs,
	}
}
