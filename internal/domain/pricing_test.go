package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sporzo/turf-booking-service/pkg/ptr"
)

func tieredConfig() FieldConfiguration {
	return FieldConfiguration{
		ID:        1,
		Name:      "7x7",
		BasePrice: 100,
		Pricing: TieredPrices{
			DayPrice:   ptr.Ptr(100.0),
			NightPrice: ptr.Ptr(150.0),
			PeakPrice:  ptr.Ptr(200.0),
		},
	}
}

func TestPriceForHour_Precedence(t *testing.T) {
	cfg := tieredConfig()

	// Пиковое окно вложено в ночное: в 19:00 выигрывает пиковая цена
	assert.Equal(t, 200.0, PriceForHour(19, cfg))
	// 21:00 только ночной тариф
	assert.Equal(t, 150.0, PriceForHour(21, cfg))
	// 10:00 дневной тариф
	assert.Equal(t, 100.0, PriceForHour(10, cfg))
}

func TestPriceForHour_FallbackToBase(t *testing.T) {
	base := FieldConfiguration{ID: 2, Name: "5x5", BasePrice: 80}

	assert.Equal(t, 80.0, PriceForHour(10, base))
	assert.Equal(t, 80.0, PriceForHour(19, base))

	// Без пиковой цены пиковый час падает на ночной тариф
	nightOnly := FieldConfiguration{
		ID:        3,
		BasePrice: 80,
		Pricing:   TieredPrices{NightPrice: ptr.Ptr(120.0)},
	}
	assert.Equal(t, 120.0, PriceForHour(19, nightOnly))
}

func TestPriceBoundaries(t *testing.T) {
	cfg := tieredConfig()

	// Границы окон включительные: 18 и 20 пиковые, 23 ночной, 17 дневной
	assert.Equal(t, 200.0, PriceForHour(18, cfg))
	assert.Equal(t, 200.0, PriceForHour(20, cfg))
	assert.Equal(t, 150.0, PriceForHour(23, cfg))
	assert.Equal(t, 100.0, PriceForHour(17, cfg))
}

func TestTotalForHours(t *testing.T) {
	cfg := tieredConfig()

	// 17 дневной + 19 пиковый + 21 ночной
	assert.Equal(t, 450.0, TotalForHours([]int{17, 19, 21}, cfg))
	assert.Equal(t, 0.0, TotalForHours(nil, cfg))
}

func TestPriceRangeFor(t *testing.T) {
	r := PriceRangeFor(tieredConfig())
	assert.Equal(t, 100.0, r.Min)
	assert.Equal(t, 200.0, r.Max)

	base := PriceRangeFor(FieldConfiguration{BasePrice: 80})
	assert.Equal(t, 80.0, base.Min)
	assert.Equal(t, 80.0, base.Max)

	// Тариф ниже базового опускает минимум
	discounted := PriceRangeFor(FieldConfiguration{
		BasePrice: 100,
		Pricing:   TieredPrices{DayPrice: ptr.Ptr(60.0)},
	})
	assert.Equal(t, 60.0, discounted.Min)
	assert.Equal(t, 100.0, discounted.Max)
}
