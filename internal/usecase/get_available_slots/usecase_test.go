package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/infra/storage/inmemory"
	"github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/pkg/ptr"
	"github.com/sporzo/turf-booking-service/pkg/types"
)

type stubCatalog struct {
	turf *turfcatalog.Turf
	err  error
}

func (c *stubCatalog) GetTurf(ctx context.Context, turfID int64) (*turfcatalog.Turf, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.turf, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	testNow  = time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
)

func catalogTurf() *turfcatalog.Turf {
	return &turfcatalog.Turf{
		ID:      1,
		OwnerID: 99,
		Name:    "Green Arena",
		OperatingWindow: turfcatalog.OperatingWindow{
			StartHour: 16,
			EndHour:   22,
		},
		FieldConfigs: []turfcatalog.FieldConfiguration{
			{
				ID:         2,
				Name:       "7x7",
				BasePrice:  100,
				DayPrice:   ptr.Ptr(100.0),
				NightPrice: ptr.Ptr(150.0),
				PeakPrice:  ptr.Ptr(200.0),
			},
			{ID: 3, Name: "5x5", BasePrice: 80},
		},
	}
}

func newTestUseCase(ledger AvailabilityLedger) *UseCase {
	uc := NewUseCase(&stubCatalog{turf: catalogTurf()}, ledger, noopLogger{})
	uc.timeProvider = fixedClock{testNow}
	return uc
}

func TestUseCase_Execute_SlotGridWithTieredPrices(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger())

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, "Green Arena", resp.TurfName)
	assert.Equal(t, int64(2), resp.FieldConfigID)
	assert.Len(t, resp.FieldConfigs, 2)
	assert.Equal(t, 100.0, resp.MinPrice)
	assert.Equal(t, 200.0, resp.MaxPrice)

	// Окно 16..22 включительно - 7 слотов
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, 16, resp.Slots[0].Hour)
	assert.Equal(t, "16:00", resp.Slots[0].StartTime)
	assert.Equal(t, "17:00", resp.Slots[0].EndTime)
	assert.Equal(t, 22, resp.Slots[6].Hour)

	// 17 - дневной тариф, 18 - пиковый, 21 - ночной
	assert.Equal(t, 100.0, priceOf(t, resp, 17))
	assert.Equal(t, 200.0, priceOf(t, resp, 18))
	assert.Equal(t, 150.0, priceOf(t, resp, 21))

	for _, s := range resp.Slots {
		assert.Equal(t, SlotStatusAvailable, s.Status)
	}
}

func TestUseCase_Execute_MarksBookedAndFlexible(t *testing.T) {
	ledger := inmemory.NewLedger()

	require.NoError(t, ledger.Commit(context.Background(), &domain.Booking{
		BookingID:     "BK-1",
		UserID:        5,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		Type:          domain.TypeSlots,
		SlotHours:     []int{18},
		Amount:        200,
		PaymentStatus: domain.StatusPending,
	}))

	start, err := types.NewTimeStringFromString("20:00")
	require.NoError(t, err)
	end, err := types.NewTimeStringFromString("22:00")
	require.NoError(t, err)
	require.NoError(t, ledger.Commit(context.Background(), &domain.Booking{
		BookingID:     "BK-flex",
		UserID:        6,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		Type:          domain.TypeFlexible,
		FlexStartTime: &start,
		FlexEndTime:   &end,
		Amount:        300,
		PaymentStatus: domain.StatusCompleted,
	}))

	uc := newTestUseCase(ledger)

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, SlotStatusBooked, statusOf(t, resp, 18))
	assert.Equal(t, SlotStatusFlexible, statusOf(t, resp, 20))
	assert.Equal(t, SlotStatusFlexible, statusOf(t, resp, 21))
	// Гибкий диапазон полуоткрытый: час 22 свободен
	assert.Equal(t, SlotStatusAvailable, statusOf(t, resp, 22))
}

func TestUseCase_Execute_TodayMarksTooSoonSlots(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger())
	// Сегодня, 16:40: слоты 16 и 17 недоступны, 18 доступен
	uc.timeProvider = fixedClock{time.Date(2025, 6, 15, 16, 40, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, SlotStatusTooSoon, statusOf(t, resp, 16))
	assert.Equal(t, SlotStatusTooSoon, statusOf(t, resp, 17))
	assert.Equal(t, SlotStatusAvailable, statusOf(t, resp, 18))
}

func TestUseCase_Execute_ExplicitFieldConfig(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger())

	resp, err := uc.Execute(context.Background(), &Request{
		TurfID:        1,
		FieldConfigID: ptr.Ptr(int64(3)),
		Date:          testDate,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.FieldConfigID)
	// Без тарифов все слоты по базовой цене
	assert.Equal(t, 80.0, resp.MinPrice)
	assert.Equal(t, 80.0, resp.MaxPrice)
}

func TestUseCase_Execute_UnknownFieldConfig(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger())

	_, err := uc.Execute(context.Background(), &Request{
		TurfID:        1,
		FieldConfigID: ptr.Ptr(int64(42)),
		Date:          testDate,
	})

	assert.ErrorIs(t, err, ErrFieldConfigNotFound)
}

func TestUseCase_Execute_DateOutOfRange(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger())

	_, err := uc.Execute(context.Background(), &Request{TurfID: 1, Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	_, err = uc.Execute(context.Background(), &Request{TurfID: 1, Date: testNow.AddDate(0, 0, domain.MaxAdvanceBookingDays+1)})
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestUseCase_Execute_TurfNotFound(t *testing.T) {
	uc := NewUseCase(&stubCatalog{err: turfcatalog.ErrTurfNotFound}, inmemory.NewLedger(), noopLogger{})
	uc.timeProvider = fixedClock{testNow}

	_, err := uc.Execute(context.Background(), &Request{TurfID: 404, Date: testDate})
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func priceOf(t *testing.T, resp *Response, hour int) float64 {
	t.Helper()
	for _, s := range resp.Slots {
		if s.Hour == hour {
			return s.Price
		}
	}
	t.Fatalf("slot for hour %d not found", hour)
	return 0
}

func statusOf(t *testing.T, resp *Response, hour int) SlotStatus {
	t.Helper()
	for _, s := range resp.Slots {
		if s.Hour == hour {
			return s.Status
		}
	}
	t.Fatalf("slot for hour %d not found", hour)
	return ""
}
