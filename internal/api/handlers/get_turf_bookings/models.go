package get_turf_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/service/bookings/models"
)

// ParseQuery собирает запрос сервиса из query-параметров
// Поддерживаются startDate, endDate (YYYY-MM-DD), status и includeInactive
func ParseQuery(query url.Values, turfID, userID int64) (*models.GetTurfBookingsRequest, error) {
	req := &models.GetTurfBookingsRequest{
		UserID: userID,
		TurfID: turfID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
