package create_flexible_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sporzo/turf-booking-service/internal/domain"
	catalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/pkg/types"
)

// UseCase use case гибкого бронирования непрерывного диапазона времени
type UseCase struct {
	catalogClient TurfCatalogClient
	ledger        AvailabilityLedger
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogClient TurfCatalogClient,
	ledger AvailabilityLedger,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		ledger:        ledger,
		timeProvider:  RealTimeProvider{},
		logger:        logger,
	}
}

// Execute создает гибкое бронирование со статусом pending.
// Диапазон [start, end) занимает те же часы журнала, что и слотовые брони:
// конфликт с любым пересекающимся бронированием отклоняет запись целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateFlexibleBooking: user=%d, turf=%d, field_config=%d, date=%s, range=%s-%s",
		req.UserID, req.TurfID, req.FieldConfigID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if req.UserID <= 0 || req.TurfID <= 0 || req.FieldConfigID <= 0 {
		return nil, fmt.Errorf("%w: userId, turfId and fieldConfigId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidTimeRange, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	startHour, err := start.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidTimeRange, err)
	}
	endHour, err := end.Hour()
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidTimeRange, err)
	}
	if endHour <= startHour {
		return nil, fmt.Errorf("%w: range must cover at least one full hour", ErrInvalidTimeRange)
	}

	if err := uc.validateDate(req.Date); err != nil {
		uc.logger.Warn("CreateFlexibleBooking: date=%s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 2. Получаем площадку и проверяем окно работы
	turf, err := uc.catalogClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrTurfNotFound) {
			uc.logger.Warn("CreateFlexibleBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateFlexibleBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	domainTurf := turf.ToDomain()
	cfg, ok := domainTurf.FieldConfigurationByID(req.FieldConfigID)
	if !ok {
		uc.logger.Warn("CreateFlexibleBooking: field config id=%d not found on turf id=%d", req.FieldConfigID, req.TurfID)
		return nil, ErrFieldConfigNotFound
	}

	// Последний занимаемый час - endHour-1, диапазон полуоткрытый
	if !domainTurf.OperatingWindow.ContainsHour(startHour) || !domainTurf.OperatingWindow.ContainsHour(endHour-1) {
		uc.logger.Warn("CreateFlexibleBooking: range %s-%s outside operating hours of turf id=%d",
			req.StartTime, req.EndTime, req.TurfID)
		return nil, ErrOutsideOperatingHours
	}

	// 3. Правило минимального запаса для сегодняшних броней
	if uc.isTooSoon(req.Date, startHour) {
		uc.logger.Warn("CreateFlexibleBooking: range starting at %s is too soon", req.StartTime)
		return nil, ErrTooSoon
	}

	// 4. Фиксируем в журнале; стоимость считается по покрытым часам
	hours := make([]int, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		hours = append(hours, h)
	}

	booking := &domain.Booking{
		BookingID:     "BK-" + uuid.NewString(),
		UserID:        req.UserID,
		TurfID:        req.TurfID,
		FieldConfigID: cfg.ID,
		Date:          req.Date,
		Type:          domain.TypeFlexible,
		FlexStartTime: &start,
		FlexEndTime:   &end,
		Amount:        domain.TotalForHours(hours, cfg),
		PaymentStatus: domain.StatusPending,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}

	if err := uc.ledger.Commit(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateFlexibleBooking: conflict for booking_id=%s: %v", booking.BookingID, err)
			return nil, err
		}
		uc.logger.Error("CreateFlexibleBooking: ledger error for booking_id=%s: %v", booking.BookingID, err)
		return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateFlexibleBooking: booking_id=%s created, amount=%.2f", booking.BookingID, booking.Amount)
	return &Response{
		BookingID:     booking.BookingID,
		TurfID:        booking.TurfID,
		FieldConfigID: booking.FieldConfigID,
		Date:          booking.Date.Format(domain.DateFormat),
		StartTime:     start.String(),
		EndTime:       end.String(),
		Amount:        booking.Amount,
		PaymentStatus: string(booking.PaymentStatus),
	}, nil
}

// validateDate проверяет попадание даты в горизонт бронирования
func (uc *UseCase) validateDate(date time.Time) error {
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	latest := today.AddDate(0, 0, domain.MaxAdvanceBookingDays)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if day.Before(today) || day.After(latest) {
		return fmt.Errorf("%w: date=%s", ErrDateOutOfRange, day.Format(domain.DateFormat))
	}

	return nil
}

// isTooSoon применяет правило минимального запаса к началу диапазона
func (uc *UseCase) isTooSoon(date time.Time, startHour int) bool {
	now := uc.timeProvider.Now()
	if date.Year() != now.Year() || date.Month() != now.Month() || date.Day() != now.Day() {
		return false
	}

	switch {
	case startHour < now.Hour():
		return true
	case startHour == now.Hour():
		return true
	case startHour == now.Hour()+1 && now.Minute() > domain.MinLeadTimeMinutes:
		return true
	default:
		return false
	}
}
