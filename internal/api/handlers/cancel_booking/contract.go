package cancel_booking

import (
	"context"

	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
