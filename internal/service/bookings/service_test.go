package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporzo/turf-booking-service/internal/domain"
	bookingRepo "github.com/sporzo/turf-booking-service/internal/infra/storage/booking"
	catalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

type stubRepo struct {
	byID       map[string]*domain.Booking
	byUser     []*domain.Booking
	byTurf     []*domain.Booking
	lastFilter domain.TurfBookingsFilter
}

func (s *stubRepo) GetByBookingID(_ context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := s.byID[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubRepo) GetByUserID(_ context.Context, _ int64, _ *domain.PaymentStatus) ([]*domain.Booking, error) {
	return s.byUser, nil
}

func (s *stubRepo) GetByTurfWithFilter(_ context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	return s.byTurf, nil
}

type stubLedger struct {
	cancelled  []string
	lastReason string
}

func (s *stubLedger) Cancel(_ context.Context, bookingID, reason string) error {
	s.cancelled = append(s.cancelled, bookingID)
	s.lastReason = reason
	return nil
}

type stubCatalog struct {
	turf *catalogClient.Turf
	err  error
}

func (s *stubCatalog) GetTurf(_ context.Context, _ int64) (*catalogClient.Turf, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.turf, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(bookingID string, userID int64, status domain.PaymentStatus) *domain.Booking {
	return &domain.Booking{
		BookingID:     bookingID,
		UserID:        userID,
		TurfID:        1,
		FieldConfigID: 2,
		Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:          domain.TypeSlots,
		SlotHours:     []int{18, 19},
		Amount:        400,
		PaymentStatus: status,
	}
}

func testTurf(ownerID int64) *catalogClient.Turf {
	return &catalogClient.Turf{
		ID:      1,
		OwnerID: ownerID,
		Name:    "Green Arena",
		OperatingWindow: catalogClient.OperatingWindow{
			StartHour: 6,
			EndHour:   23,
		},
	}
}

func TestService_GetByBookingID_Author(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusPending),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	resp, err := svc.GetByBookingID(context.Background(), "BK-1", 10)
	require.NoError(t, err)
	assert.Equal(t, "BK-1", resp.BookingID)
	assert.Equal(t, []int{18, 19}, resp.SlotHours)
}

func TestService_GetByBookingID_TurfOwner(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusPending),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	resp, err := svc.GetByBookingID(context.Background(), "BK-1", 99)
	require.NoError(t, err)
	assert.Equal(t, "BK-1", resp.BookingID)
}

func TestService_GetByBookingID_AccessDenied(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusPending),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "BK-1", 55)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByBookingID_NotFound(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	_, err := svc.GetByBookingID(context.Background(), "BK-missing", 10)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &stubRepo{byUser: []*domain.Booking{
		testBooking("BK-1", 10, domain.StatusPending),
		testBooking("BK-2", 10, domain.StatusCompleted),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "BK-1", resp.Bookings[0].BookingID)
	assert.Equal(t, "BK-2", resp.Bookings[1].BookingID)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	badStatus := "paid"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: &badStatus,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetTurfBookings_OwnerOnly(t *testing.T) {
	repo := &stubRepo{byTurf: []*domain.Booking{
		testBooking("BK-1", 10, domain.StatusPending),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	// Владелец видит бронирования площадки
	resp, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{
		UserID: 99,
		TurfID: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	// Остальным доступ запрещен
	_, err = svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{
		UserID: 10,
		TurfID: 1,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetTurfBookings_StatusFilter(t *testing.T) {
	repo := &stubRepo{byTurf: []*domain.Booking{}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	status := "completed"
	_, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{
		UserID: 99,
		TurfID: 1,
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusCompleted, *repo.lastFilter.Status)
}

func TestService_GetTurfBookings_TurfNotFound(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{err: catalogClient.ErrTurfNotFound}, noopLogger{})

	_, err := svc.GetTurfBookings(context.Background(), &models.GetTurfBookingsRequest{
		UserID: 99,
		TurfID: 1,
	})
	require.ErrorIs(t, err, ErrTurfNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusPending),
	}}
	ledger := &stubLedger{}
	svc := NewService(repo, ledger, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	err := svc.Cancel(context.Background(), "BK-1", &models.CancelBookingRequest{
		UserID:             10,
		CancellationReason: "rain",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"BK-1"}, ledger.cancelled)
	assert.Equal(t, "rain", ledger.lastReason)
}

func TestService_Cancel_AlreadyCancelledIsNoop(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusCancelled),
	}}
	ledger := &stubLedger{}
	svc := NewService(repo, ledger, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	err := svc.Cancel(context.Background(), "BK-1", &models.CancelBookingRequest{UserID: 10})
	require.NoError(t, err)
	assert.Empty(t, ledger.cancelled)
}

func TestService_Cancel_FailedCannotBeCancelled(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusFailed),
	}}
	svc := NewService(repo, &stubLedger{}, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	err := svc.Cancel(context.Background(), "BK-1", &models.CancelBookingRequest{UserID: 10})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Booking{
		"BK-1": testBooking("BK-1", 10, domain.StatusPending),
	}}
	ledger := &stubLedger{}
	svc := NewService(repo, ledger, &stubCatalog{turf: testTurf(99)}, noopLogger{})

	err := svc.Cancel(context.Background(), "BK-1", &models.CancelBookingRequest{UserID: 55})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, ledger.cancelled)
}
