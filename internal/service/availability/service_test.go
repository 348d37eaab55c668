package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/internal/domain"
	bookingRepo "github.com/sporzo/turf-booking-service/internal/infra/storage/booking"
)

type stubRepo struct {
	byID    map[string]*domain.Booking
	active  []*domain.Booking
	created []*domain.Booking

	cancelledID     string
	cancelledStatus domain.PaymentStatus
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := r.byID[b.BookingID]; ok {
		return nil, bookingRepo.ErrDuplicateBookingID
	}
	r.byID[b.BookingID] = b
	r.created = append(r.created, b)
	r.active = append(r.active, b)
	return b, nil
}

func (r *stubRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := r.byID[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *stubRepo) GetActiveByTurfAndDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error) {
	return r.active, nil
}

func (r *stubRepo) Cancel(ctx context.Context, bookingID string, status domain.PaymentStatus, reason string) error {
	b, ok := r.byID[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.PaymentStatus = status
	r.cancelledID = bookingID
	r.cancelledStatus = status
	return nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (stubTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubMetrics struct {
	committed int
	conflicts int
}

func (m *stubMetrics) IncBookingCommitted(paymentStatus string) { m.committed++ }
func (m *stubMetrics) IncBookingConflict(turfID string)         { m.conflicts++ }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testBooking(id string, hours []int) *domain.Booking {
	return &domain.Booking{
		BookingID:     id,
		UserID:        10,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:          domain.TypeSlots,
		SlotHours:     hours,
		Amount:        200,
		PaymentStatus: domain.StatusPending,
	}
}

func TestService_Commit_Success(t *testing.T) {
	repo := newStubRepo()
	metrics := &stubMetrics{}
	svc := NewService(repo, stubTxManager{}, nil, metrics, noopLogger{})

	err := svc.Commit(context.Background(), testBooking("BK-1", []int{10, 11}))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, metrics.committed)
	assert.Equal(t, 0, metrics.conflicts)
}

func TestService_Commit_ConflictIsAllOrNothing(t *testing.T) {
	repo := newStubRepo()
	metrics := &stubMetrics{}
	svc := NewService(repo, stubTxManager{}, nil, metrics, noopLogger{})

	require.NoError(t, svc.Commit(context.Background(), testBooking("BK-1", []int{10, 11})))

	// Часы 11 и 12 пересекаются с BK-1 только по 11, но запись не создается вовсе
	err := svc.Commit(context.Background(), testBooking("BK-2", []int{11, 12}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSlotNotAvailable))

	var conflict *domain.SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []int{11}, conflict.Hours)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestService_Commit_IdempotentByBookingID(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil, &stubMetrics{}, noopLogger{})

	b := testBooking("BK-1", []int{10})
	require.NoError(t, svc.Commit(context.Background(), b))

	// Повторный коммит того же booking_id не создает дубликат и не конфликтует сам с собой
	require.NoError(t, svc.Commit(context.Background(), b))
	assert.Len(t, repo.created, 1)
}

func TestService_Commit_ConflictAcrossFieldConfigs(t *testing.T) {
	repo := newStubRepo()
	metrics := &stubMetrics{}
	svc := NewService(repo, stubTxManager{}, nil, metrics, noopLogger{})

	require.NoError(t, svc.Commit(context.Background(), testBooking("BK-1", []int{10})))

	// Час площадки занимается целиком: бронь другой конфигурации поля
	// на тот же час отклоняется
	other := testBooking("BK-2", []int{10})
	other.FieldConfigID = 3

	err := svc.Commit(context.Background(), other)
	require.ErrorIs(t, err, domain.ErrSlotNotAvailable)

	var conflict *domain.SlotConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []int{10}, conflict.Hours)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 1, metrics.conflicts)
}

func TestService_Cancel(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil, &stubMetrics{}, noopLogger{})

	require.NoError(t, svc.Commit(context.Background(), testBooking("BK-1", []int{10})))

	require.NoError(t, svc.Cancel(context.Background(), "BK-1", "rain"))
	assert.Equal(t, domain.StatusCancelled, repo.cancelledStatus)

	// Повторная отмена идемпотентна
	repo.cancelledID = ""
	require.NoError(t, svc.Cancel(context.Background(), "BK-1", "rain"))
	assert.Empty(t, repo.cancelledID)
}

func TestService_Cancel_CompletedBecomesRefunded(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, stubTxManager{}, nil, &stubMetrics{}, noopLogger{})

	b := testBooking("BK-1", []int{10})
	b.PaymentStatus = domain.StatusCompleted
	require.NoError(t, svc.Commit(context.Background(), b))

	require.NoError(t, svc.Cancel(context.Background(), "BK-1", "owner request"))
	assert.Equal(t, domain.StatusRefunded, repo.cancelledStatus)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newStubRepo(), stubTxManager{}, nil, &stubMetrics{}, noopLogger{})

	err := svc.Cancel(context.Background(), "BK-missing", "")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_IsBooked_UsesCache(t *testing.T) {
	cache, mock := redismock.NewClientMock()
	svc := NewService(newStubRepo(), stubTxManager{}, cache, &stubMetrics{}, noopLogger{})

	mock.ExpectGet("availability:1:2025-06-15").SetVal("[10,11]")

	booked, err := svc.IsBooked(context.Background(), 1, "2025-06-15", 11)

	require.NoError(t, err)
	assert.True(t, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_IsBooked_CacheMissFillsCache(t *testing.T) {
	repo := newStubRepo()
	b := testBooking("BK-1", []int{10})
	repo.byID[b.BookingID] = b
	repo.active = append(repo.active, b)

	cache, mock := redismock.NewClientMock()
	svc := NewService(repo, stubTxManager{}, cache, &stubMetrics{}, noopLogger{})

	key := "availability:1:2025-06-15"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, []byte("[10]"), cacheTTL).SetVal("OK")

	booked, err := svc.IsBooked(context.Background(), 1, "2025-06-15", 10)

	require.NoError(t, err)
	assert.True(t, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
