package get_turf_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sporzo/turf-booking-service/internal/api/handlers"
	"github.com/sporzo/turf-booking-service/internal/api/middleware"
	"github.com/sporzo/turf-booking-service/internal/service/bookings"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidQuery  = "некорректные параметры фильтра"
	msgInvalidStatus = "некорректный статус оплаты"
	msgTurfNotFound  = "площадка не найдена"
	msgAccessDenied  = "бронирования площадки доступны только владельцу"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/bookings?startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/bookings - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /turfs/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := ParseQuery(r.URL.Query(), turfID, userID)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/bookings - Invalid query: turf_id=%d, error=%v", turfID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetTurfBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/bookings - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /turfs/{id}/bookings - Access denied: turf_id=%d, user_id=%d", turfID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/bookings - Invalid filter: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /turfs/{id}/bookings - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id}/bookings - Returned %d bookings: turf_id=%d, user_id=%d",
		len(result.Bookings), turfID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
