package get_booking

import (
	"context"

	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetByBookingID(ctx context.Context, bookingID string, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
