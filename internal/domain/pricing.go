package domain

// Тарифные окна по часу начала слота
// Пиковое окно вложено в ночное (18-20 внутри 18-23) - это осознанный порядок
// проверок: peak -> night -> day -> base, пиковая цена всегда выигрывает у ночной
const (
	PeakStartHour  = 18
	PeakEndHour    = 20
	NightStartHour = 18
	NightEndHour   = 23
)

// IsPeakHour сообщает, попадает ли час в пиковое окно
func IsPeakHour(hour int) bool {
	return hour >= PeakStartHour && hour <= PeakEndHour
}

// IsNightHour сообщает, попадает ли час в ночное окно
func IsNightHour(hour int) bool {
	return hour >= NightStartHour && hour <= NightEndHour
}

// PriceForHour возвращает цену слота для конфигурации поля
// Порядок приоритета фиксирован: peak -> night -> day -> base
func PriceForHour(hour int, cfg FieldConfiguration) float64 {
	if IsPeakHour(hour) && cfg.Pricing.PeakPrice != nil {
		return *cfg.Pricing.PeakPrice
	}
	if IsNightHour(hour) && cfg.Pricing.NightPrice != nil {
		return *cfg.Pricing.NightPrice
	}
	if cfg.Pricing.DayPrice != nil {
		return *cfg.Pricing.DayPrice
	}
	return cfg.BasePrice
}

// PriceRange диапазон цен конфигурации поля
type PriceRange struct {
	Min float64
	Max float64
}

// PriceRangeFor возвращает минимальную и максимальную цену по заданным тарифам
// Базовая цена участвует всегда, тарифные - только если заданы
func PriceRangeFor(cfg FieldConfiguration) PriceRange {
	r := PriceRange{Min: cfg.BasePrice, Max: cfg.BasePrice}
	for _, p := range []*float64{cfg.Pricing.DayPrice, cfg.Pricing.NightPrice, cfg.Pricing.PeakPrice} {
		if p == nil {
			continue
		}
		if *p < r.Min {
			r.Min = *p
		}
		if *p > r.Max {
			r.Max = *p
		}
	}
	return r
}

// TotalForHours возвращает суммарную стоимость набора часов
// Сумма целых рупий, без округлений сверх точности валюты
func TotalForHours(hours []int, cfg FieldConfiguration) float64 {
	var total float64
	for _, h := range hours {
		total += PriceForHour(h, cfg)
	}
	return total
}
