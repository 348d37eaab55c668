package commit_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/infra/storage/inmemory"
	"github.com/sporzo/turf-booking-service/internal/integrations/payments"
	"github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/internal/service/selection"
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

func catalogTurf() *turfcatalog.Turf {
	return &turfcatalog.Turf{
		ID:      1,
		OwnerID: 99,
		Name:    "Green Arena",
		OperatingWindow: turfcatalog.OperatingWindow{
			StartHour: 6,
			EndHour:   23,
		},
		FieldConfigs: []turfcatalog.FieldConfiguration{
			{ID: 2, Name: "5x5", BasePrice: 200},
		},
	}
}

func newTestUseCase(ledger AvailabilityLedger, pay PaymentsClient) *UseCase {
	uc := NewUseCase(&stubCatalog{turf: catalogTurf()}, ledger, pay, noopLogger{})
	uc.timeProvider = fixedClock{time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_ManualPayment(t *testing.T) {
	ledger := inmemory.NewLedger()
	uc := newTestUseCase(ledger, &stubPayments{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{10, 11},
		PaymentMethod: PaymentMethodManual,
	})

	require.NoError(t, err)
	assert.Equal(t, 400.0, resp.Amount)
	assert.Equal(t, string(domain.StatusPending), resp.PaymentStatus)
	assert.Equal(t, []int{10, 11}, resp.SlotHours)

	stored, err := ledger.GetByBookingID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.UserID)
}

func TestUseCase_Execute_OnlinePayment(t *testing.T) {
	pay := &stubPayments{result: &payments.ChargeResult{
		Status:                payments.ChargeStatusSuccess,
		ProviderTransactionID: "txn-7",
	}}
	uc := newTestUseCase(inmemory.NewLedger(), pay)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{18},
		PaymentMethod: PaymentMethodOnline,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.PaymentStatus)
	require.NotNil(t, resp.PaymentRef)
	assert.Equal(t, "txn-7", *resp.PaymentRef)
	assert.Equal(t, 1, pay.calls)
}

func TestUseCase_Execute_RejectsBookedHour(t *testing.T) {
	ledger := inmemory.NewLedger()
	occupyHours(t, ledger, []int{10})

	uc := newTestUseCase(ledger, &stubPayments{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{10},
		PaymentMethod: PaymentMethodManual,
	})

	assert.ErrorIs(t, err, selection.ErrSlotAlreadyBooked)
}

func TestUseCase_Execute_RejectsTooSoonHour(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger(), &stubPayments{})
	uc.timeProvider = fixedClock{time.Date(2025, 6, 15, 14, 40, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{15},
		PaymentMethod: PaymentMethodManual,
	})

	assert.ErrorIs(t, err, selection.ErrSlotTooSoon)
}

func TestUseCase_Execute_UnknownFieldConfig(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger(), &stubPayments{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 42,
		Date:          testDate,
		SlotHours:     []int{10},
		PaymentMethod: PaymentMethodManual,
	})

	assert.ErrorIs(t, err, ErrFieldConfigNotFound)
}

func TestUseCase_Execute_TurfNotFound(t *testing.T) {
	uc := NewUseCase(&stubCatalog{err: turfcatalog.ErrTurfNotFound}, inmemory.NewLedger(), &stubPayments{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        404,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{10},
		PaymentMethod: PaymentMethodManual,
	})

	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestUseCase_Execute_EmptySelection(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger(), &stubPayments{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		PaymentMethod: PaymentMethodManual,
	})

	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestUseCase_Execute_InvalidPaymentMethod(t *testing.T) {
	uc := newTestUseCase(inmemory.NewLedger(), &stubPayments{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		SlotHours:     []int{10},
		PaymentMethod: "crypto",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
