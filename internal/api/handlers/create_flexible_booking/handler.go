package create_flexible_booking

import (
	"errors"
	"net/http"

	"github.com/sporzo/turf-booking-service/internal/api/handlers"
	"github.com/sporzo/turf-booking-service/internal/api/middleware"
	"github.com/sporzo/turf-booking-service/internal/domain"
	createFlexible "github.com/sporzo/turf-booking-service/internal/usecase/create_flexible_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgInvalidTimeRange   = "некорректный диапазон времени, ожидается HH:MM и конец позже начала"
	msgOutsideHours       = "диапазон вне часов работы площадки"
	msgTooSoon            = "диапазон начинается слишком скоро"
	msgDateOutOfRange     = "дата вне горизонта бронирования"
	msgTurfNotFound       = "площадка не найдена"
	msgFieldConfigMissing = "конфигурация поля не найдена"
	msgRangeNotAvailable  = "часы диапазона уже заняты"
)

type Handler struct {
	useCase CreateFlexibleBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateFlexibleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/flexible
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFlexibleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/flexible - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/flexible - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/flexible - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createFlexible.ErrInvalidInput):
			h.logger.Warn("POST /bookings/flexible - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createFlexible.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings/flexible - Invalid time range: user_id=%d, range=%s-%s",
				userID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createFlexible.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings/flexible - Outside operating hours: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createFlexible.ErrTooSoon):
			h.logger.Warn("POST /bookings/flexible - Too soon: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooSoon)

		case errors.Is(err, createFlexible.ErrDateOutOfRange):
			h.logger.Warn("POST /bookings/flexible - Date out of range: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createFlexible.ErrTurfNotFound):
			h.logger.Warn("POST /bookings/flexible - Turf not found: turf_id=%d", req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createFlexible.ErrFieldConfigNotFound):
			h.logger.Warn("POST /bookings/flexible - Field config not found: turf_id=%d, field_config_id=%d",
				req.TurfID, req.FieldConfigID)
			handlers.RespondNotFound(w, msgFieldConfigMissing)

		case errors.Is(err, domain.ErrSlotNotAvailable):
			var conflict *domain.SlotConflictError
			resp := ConflictResponse{Error: msgRangeNotAvailable}
			if errors.As(err, &conflict) {
				resp.ConflictingHours = conflict.Hours
			}
			h.logger.Warn("POST /bookings/flexible - Conflict: user_id=%d, turf_id=%d, hours=%v",
				userID, req.TurfID, resp.ConflictingHours)
			handlers.RespondConflict(w, resp)

		default:
			h.logger.Error("POST /bookings/flexible - Failed to create booking: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/flexible - Booking created successfully: booking_id=%s, user_id=%d, turf_id=%d",
		result.BookingID, userID, req.TurfID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
