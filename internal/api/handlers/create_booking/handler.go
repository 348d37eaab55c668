package create_booking

import (
	"errors"
	"net/http"

	"github.com/sporzo/turf-booking-service/internal/api/handlers"
	"github.com/sporzo/turf-booking-service/internal/api/middleware"
	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/service/selection"
	commitReservation "github.com/sporzo/turf-booking-service/internal/usecase/commit_reservation"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgEmptySelection          = "не выбран ни один слот"
	msgInvalidInput            = "некорректные параметры бронирования"
	msgTurfNotFound            = "площадка не найдена"
	msgFieldConfigNotFound     = "конфигурация поля не найдена"
	msgSlotNotAvailable        = "выбранные слоты уже заняты"
	msgSlotTooSoon             = "слот в прошлом или начинается слишком скоро"
	msgSlotOutsideWindow       = "слот вне часов работы площадки"
	msgDateOutOfRange          = "дата вне горизонта бронирования"
	msgPaymentFailed           = "платеж отклонен провайдером"
	msgPaymentCancelled        = "платеж отменен пользователем"
	msgPaymentUnavailable      = "платежный провайдер временно недоступен"
	msgReconciliationEscalated = "платеж проведен, но слоты оказались заняты; обратитесь в поддержку для возврата средств"
)

type Handler struct {
	useCase CommitReservationUseCase
	logger  Logger
}

func NewHandler(useCase CommitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, commitReservation.ErrEmptySelection):
			h.logger.Warn("POST /bookings - Empty selection: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, commitReservation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, commitReservation.ErrTurfNotFound):
			h.logger.Warn("POST /bookings - Turf not found: turf_id=%d", req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, commitReservation.ErrFieldConfigNotFound):
			h.logger.Warn("POST /bookings - Field config not found: turf_id=%d, field_config_id=%d",
				req.TurfID, req.FieldConfigID)
			handlers.RespondNotFound(w, msgFieldConfigNotFound)

		case errors.Is(err, selection.ErrSlotAlreadyBooked), errors.Is(err, selection.ErrSlotInFlexibleRange):
			h.logger.Warn("POST /bookings - Slot already booked: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondConflict(w, ConflictResponse{Error: msgSlotNotAvailable})

		case errors.Is(err, selection.ErrSlotTooSoon):
			h.logger.Warn("POST /bookings - Slot too soon: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgSlotTooSoon)

		case errors.Is(err, selection.ErrSlotOutsideWindow):
			h.logger.Warn("POST /bookings - Slot outside operating hours: user_id=%d, turf_id=%d", userID, req.TurfID)
			handlers.RespondBadRequest(w, msgSlotOutsideWindow)

		case errors.Is(err, selection.ErrDateOutOfRange):
			h.logger.Warn("POST /bookings - Date out of range: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, commitReservation.ErrReconciliationRequired):
			// Гонка после успешного списания: эскалируется, а не гасится
			var reconciliation *commitReservation.ReconciliationError
			if errors.As(err, &reconciliation) {
				h.logger.Error("POST /bookings - RECONCILIATION REQUIRED: booking_id=%s, provider_txn=%s, hours=%v",
					reconciliation.BookingID, reconciliation.ProviderTransactionID, reconciliation.ConflictingHours)
			} else {
				h.logger.Error("POST /bookings - RECONCILIATION REQUIRED: user_id=%d, error=%v", userID, err)
			}
			handlers.RespondError(w, http.StatusConflict, msgReconciliationEscalated)

		case errors.Is(err, domain.ErrSlotNotAvailable):
			// Гонка, проигранная на коммите: возвращаем занятые часы для перерисовки сетки
			var conflict *domain.SlotConflictError
			resp := ConflictResponse{Error: msgSlotNotAvailable}
			if errors.As(err, &conflict) {
				resp.ConflictingHours = conflict.Hours
			}
			h.logger.Warn("POST /bookings - Commit conflict: user_id=%d, turf_id=%d, hours=%v",
				userID, req.TurfID, resp.ConflictingHours)
			handlers.RespondConflict(w, resp)

		case errors.Is(err, commitReservation.ErrPaymentFailed):
			h.logger.Warn("POST /bookings - Payment failed: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, commitReservation.ErrPaymentCancelled):
			h.logger.Info("POST /bookings - Payment cancelled by user: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgPaymentCancelled)

		case errors.Is(err, commitReservation.ErrPaymentUnavailable):
			h.logger.Error("POST /bookings - Payment provider unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, turf_id=%d, error=%v",
				userID, req.TurfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%d, turf_id=%d",
		result.BookingID, userID, req.TurfID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
