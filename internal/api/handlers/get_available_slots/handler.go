package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sporzo/turf-booking-service/internal/api/handlers"
	"github.com/sporzo/turf-booking-service/internal/domain"
	getAvailableSlots "github.com/sporzo/turf-booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidTurfID       = "некорректный ID площадки"
	msgInvalidFieldConfig  = "некорректный ID конфигурации поля"
	msgMissingDate         = "отсутствует параметр date"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateOutOfRange      = "дата вне горизонта бронирования"
	msgTurfNotFound        = "площадка не найдена"
	msgFieldConfigNotFound = "конфигурация поля не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs/{turfId}/available-slots?date=YYYY-MM-DD&fieldConfigId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /turfs/{id}/available-slots - Missing date parameter: turf_id=%d", turfID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /turfs/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{
		TurfID: turfID,
		Date:   date,
	}

	if raw := r.URL.Query().Get("fieldConfigId"); raw != "" {
		fieldConfigID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid field config ID %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidFieldConfig)
			return
		}
		req.FieldConfigID = &fieldConfigID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTurfNotFound):
			h.logger.Warn("GET /turfs/{id}/available-slots - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, getAvailableSlots.ErrFieldConfigNotFound):
			h.logger.Warn("GET /turfs/{id}/available-slots - Field config not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgFieldConfigNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateOutOfRange):
			h.logger.Warn("GET /turfs/{id}/available-slots - Date out of range: turf_id=%d, date=%s", turfID, dateStr)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /turfs/{id}/available-slots - Invalid input: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /turfs/{id}/available-slots - Failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turfs/{id}/available-slots - Returned %d slots: turf_id=%d, date=%s",
		len(result.Slots), turfID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
