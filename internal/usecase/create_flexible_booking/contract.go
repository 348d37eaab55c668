package create_flexible_booking

import (
	"context"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
)

// AvailabilityLedger интерфейс журнала доступности слотов
type AvailabilityLedger interface {
	Commit(ctx context.Context, booking *domain.Booking) error
}

// TurfCatalogClient интерфейс клиента каталога площадок
type TurfCatalogClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfcatalog.Turf, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
