package commit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sporzo/turf-booking-service/internal/domain"
	catalogClient "github.com/sporzo/turf-booking-service/internal/integrations/turfcatalog"
	"github.com/sporzo/turf-booking-service/internal/service/selection"
)

// UseCase use case оформления бронирования дискретных слотов
type UseCase struct {
	catalogClient  TurfCatalogClient
	ledger         AvailabilityLedger
	paymentsClient PaymentsClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogClient TurfCatalogClient,
	ledger AvailabilityLedger,
	paymentsClient PaymentsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogClient:  catalogClient,
		ledger:         ledger,
		paymentsClient: paymentsClient,
		timeProvider:   RealTimeProvider{},
		logger:         logger,
	}
}

// Execute проводит запрос через весь воркфлоу: валидация выбора на сервере,
// выбор способа оплаты и фиксация в журнале доступности.
// Ошибки выбора слотов (занят, слишком поздно, вне окна) приходят из пакета selection.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitReservation: user=%d, turf=%d, field_config=%d, date=%s, hours=%v, method=%s",
		req.UserID, req.TurfID, req.FieldConfigID, req.Date.Format(domain.DateFormat), req.SlotHours, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку из каталога
	turf, err := uc.catalogClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrTurfNotFound) {
			uc.logger.Warn("CommitReservation: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CommitReservation: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	domainTurf := turf.ToDomain()

	// 3. Перепроверяем выбор на сервере: клиентскому состоянию доверять нельзя
	session, err := selection.NewSession(domainTurf, req.FieldConfigID, req.Date, uc.ledger, uc.timeProvider)
	if err != nil {
		if errors.Is(err, selection.ErrFieldConfigNotFound) {
			uc.logger.Warn("CommitReservation: field config id=%d not found on turf id=%d", req.FieldConfigID, req.TurfID)
			return nil, ErrFieldConfigNotFound
		}
		uc.logger.Warn("CommitReservation: session rejected: %v", err)
		return nil, err
	}

	for _, hour := range req.SlotHours {
		if err := session.Toggle(ctx, hour); err != nil {
			uc.logger.Warn("CommitReservation: hour=%d rejected: %v", hour, err)
			return nil, err
		}
	}

	// 4. Прогоняем зафиксированный выбор через воркфлоу оплаты
	workflow, err := NewWorkflow(
		req.UserID,
		req.TurfID,
		session.FieldConfig(),
		session.Date(),
		session.SelectedHours(),
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		uc.ledger,
		uc.paymentsClient,
		uc.logger,
	)
	if err != nil {
		return nil, err
	}

	if err := workflow.Begin(); err != nil {
		return nil, err
	}

	var resp *Response
	switch req.PaymentMethod {
	case PaymentMethodManual:
		resp, err = workflow.PayAtVenue(ctx)
	case PaymentMethodOnline:
		resp, err = workflow.PayOnline(ctx)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CommitReservation: booking_id=%s settled for user=%d, amount=%.2f",
		resp.BookingID, req.UserID, resp.Amount)
	return resp, nil
}
