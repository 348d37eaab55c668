package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

var testDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func booking(id string, hours ...int) *domain.Booking {
	return &domain.Booking{
		BookingID:     id,
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          testDate,
		Type:          domain.TypeSlots,
		SlotHours:     hours,
		Amount:        200,
		PaymentStatus: domain.StatusPending,
	}
}

func TestLedger_CommitAndIsBooked(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	require.NoError(t, l.Commit(ctx, booking("BK-1", 10, 11)))

	booked, err := l.IsBooked(ctx, 1, "2025-06-15", 10)
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = l.IsBooked(ctx, 1, "2025-06-15", 12)
	require.NoError(t, err)
	assert.False(t, booked)

	// Другая площадка не пересекается
	booked, err = l.IsBooked(ctx, 7, "2025-06-15", 10)
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestLedger_CommitConflictAcrossFieldConfigs(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	require.NoError(t, l.Commit(ctx, booking("BK-1", 18)))

	// Час площадки занимается целиком: другая конфигурация поля
	// на тот же час не проходит
	other := booking("BK-2", 18)
	other.FieldConfigID = 3
	err := l.Commit(ctx, other)
	require.ErrorIs(t, err, domain.ErrSlotNotAvailable)

	var conflict *domain.SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []int{18}, conflict.Hours)
}

func TestLedger_CommitAllOrNothing(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	require.NoError(t, l.Commit(ctx, booking("BK-1", 11)))

	err := l.Commit(ctx, booking("BK-2", 10, 11, 12))
	require.Error(t, err)

	var conflict *domain.SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []int{11}, conflict.Hours)

	// Свободные часы неудачной попытки остались свободными
	for _, h := range []int{10, 12} {
		booked, berr := l.IsBooked(ctx, 1, "2025-06-15", h)
		require.NoError(t, berr)
		assert.False(t, booked)
	}
}

func TestLedger_CommitIdempotent(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	b := booking("BK-1", 10)
	require.NoError(t, l.Commit(ctx, b))
	require.NoError(t, l.Commit(ctx, b))

	records, err := l.ListForDate(ctx, 1, "2025-06-15")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLedger_CommitRejectsInvalidBooking(t *testing.T) {
	l := NewLedger()

	err := l.Commit(context.Background(), booking("BK-1"))
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestLedger_CancelFreesSlots(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	require.NoError(t, l.Commit(ctx, booking("BK-1", 10)))
	require.NoError(t, l.Cancel(ctx, "BK-1", "rain"))

	booked, err := l.IsBooked(ctx, 1, "2025-06-15", 10)
	require.NoError(t, err)
	assert.False(t, booked)

	// Отмененная бронь хранит причину и время отмены
	stored, err := l.GetByBookingID(ctx, "BK-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.PaymentStatus)
	require.NotNil(t, stored.CancellationReason)
	assert.Equal(t, "rain", *stored.CancellationReason)
	assert.NotNil(t, stored.CancelledAt)

	// Освобожденные часы можно занять заново
	require.NoError(t, l.Commit(ctx, booking("BK-2", 10)))
}

func TestLedger_CancelIdempotent(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	require.NoError(t, l.Commit(ctx, booking("BK-1", 10)))
	require.NoError(t, l.Cancel(ctx, "BK-1", "rain"))
	require.NoError(t, l.Cancel(ctx, "BK-1", "rain"))

	assert.ErrorIs(t, l.Cancel(ctx, "BK-missing", ""), ErrBookingNotFound)
}

func TestLedger_CancelCompletedBecomesRefunded(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	b := booking("BK-1", 10)
	b.PaymentStatus = domain.StatusCompleted
	require.NoError(t, l.Commit(ctx, b))

	require.NoError(t, l.Cancel(ctx, "BK-1", "owner request"))

	stored, err := l.GetByBookingID(ctx, "BK-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefunded, stored.PaymentStatus)
}

func TestLedger_ConcurrentCommitsSameHour(t *testing.T) {
	l := NewLedger()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = l.Commit(context.Background(), booking(
				"BK-"+string(rune('a'+i)), 18))
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, 1, wins)
}
