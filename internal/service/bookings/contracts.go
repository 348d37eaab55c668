package bookings

import (
	"context"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.PaymentStatus) ([]*domain.Booking, error)
	GetByTurfWithFilter(ctx context.Context, filter domain.TurfBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityLedger интерфейс журнала доступности для отмены бронирований
type AvailabilityLedger interface {
	Cancel(ctx context.Context, bookingID, reason string) error
}

// TurfCatalogClient интерфейс клиента каталога площадок
type TurfCatalogClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfcatalog.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
