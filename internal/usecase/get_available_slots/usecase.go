package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
	catalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
)

// UseCase use case экрана бронирования: слоты дня с ценами и статусами
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

// Execute возвращает все слоты площадки на дату с ценой и статусом каждого.
// Слоты выводятся из окна работы площадки, статусы - из журнала доступности
// и правила минимального запаса времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: turf=%d, date=%s", req.TurfID, req.Date.Format(domain.DateFormat))

	if req.TurfID <= 0 {
		return nil, fmt.Errorf("%w: turfId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := uc.validateDate(req.Date); err != nil {
		uc.logger.Warn("GetAvailableSlots: date=%s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// Получаем площадку из каталога
	turf, err := uc.catalogClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	domainTurf := turf.ToDomain()
	if err := domainTurf.Validate(); err != nil {
		uc.logger.Error("GetAvailableSlots: turf id=%d is not bookable: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: turf is not bookable: %v", ErrInternal, err)
	}

	// Выбираем конфигурацию поля: явную или первую по умолчанию
	cfg := domainTurf.FieldConfigurations[0]
	if req.FieldConfigID != nil {
		found, ok := domainTurf.FieldConfigurationByID(*req.FieldConfigID)
		if !ok {
			uc.logger.Warn("GetAvailableSlots: field config id=%d not found on turf id=%d", *req.FieldConfigID, req.TurfID)
			return nil, ErrFieldConfigNotFound
		}
		cfg = found
	}

	date := req.Date.Format(domain.DateFormat)
	bookings, err := uc.ledger.ListForDate(ctx, req.TurfID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: ledger error for turf=%d date=%s: %v", req.TurfID, date, err)
		return nil, fmt.Errorf("%w: ledger error: %v", ErrInternal, err)
	}

	slots := buildSlots(domainTurf.OperatingWindow, cfg, bookings, req.Date, uc.timeProvider.Now())

	configs := make([]FieldConfigInfo, len(domainTurf.FieldConfigurations))
	for i, c := range domainTurf.FieldConfigurations {
		configs[i] = FieldConfigInfo{ID: c.ID, Name: c.Name}
	}

	priceRange := domain.PriceRangeFor(cfg)

	uc.logger.Info("GetAvailableSlots: turf=%d date=%s returned %d slots", req.TurfID, date, len(slots))
	return &Response{
		TurfID:          domainTurf.ID,
		TurfName:        domainTurf.Name,
		FieldConfigID:   cfg.ID,
		FieldConfigName: cfg.Name,
		FieldConfigs:    configs,
		Date:            date,
		MinPrice:        priceRange.Min,
		MaxPrice:        priceRange.Max,
		Slots:           slots,
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
