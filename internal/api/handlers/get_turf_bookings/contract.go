package get_turf_bookings

import (
	"context"

	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetTurfBookings(ctx context.Context, req *models.GetTurfBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
