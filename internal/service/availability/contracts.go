package availability

import (
	"context"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetActiveByTurfAndDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, status domain.PaymentStatus, reason string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector интерфейс для бизнес-метрик журнала
type MetricsCollector interface {
	IncBookingCommitted(paymentStatus string)
	IncBookingConflict(turfID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
