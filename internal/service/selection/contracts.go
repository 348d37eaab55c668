package selection

import (
	"context"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

// AvailabilityLedger интерфейс журнала доступности слотов
type AvailabilityLedger interface {
	ListForDate(ctx context.Context, turfID int64, date string) ([]*domain.Booking, error)
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
