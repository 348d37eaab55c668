package create_flexible_booking

import (
	"context"

	createFlexible "github.com/sporzo/turf-booking-service/internal/usecase/create_flexible_booking"
)

type CreateFlexibleBookingUseCase interface {
	Execute(ctx context.Context, req *createFlexible.Request) (*createFlexible.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
