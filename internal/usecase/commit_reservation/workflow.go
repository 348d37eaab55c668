package commit_reservation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sporzo/turf-booking-service/internal/domain"
	"github.com/sporzo/turf-booking-service/internal/integrations/payments"
	"github.com/sporzo/turf-booking-service/pkg/ptr"
)

// State состояние воркфлоу оформления бронирования
type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingMethodChoice State = "awaiting_method_choice"
	StateManualPay            State = "manual_pay"
	StateOnlinePay            State = "online_pay"
	StateSettled              State = "settled"
	StateFailed               State = "failed"
	StateCancelled            State = "cancelled"
)

// paymentCurrency валюта площадок
const paymentCurrency = "INR"

// Workflow конечный автомат превращения выбора слотов в запись журнала.
// Состояния и переходы заданы явно: комбинация вроде
// "оплата идет и при этом бронь уже отменена" непредставима.
//
// Воркфлоу не потокобезопасен: один воркфлоу обслуживает один запрос.
type Workflow struct {
	bookingID string
	userID    int64
	turfID    int64

	fieldConfig domain.FieldConfiguration
	date        time.Time
	hours       []int
	amount      float64

	customerName  *string
	customerEmail *string
	customerPhone *string

	state  State
	result *Response

	ledger   AvailabilityLedger
	payments PaymentsClient
	logger   Logger
}

// NewWorkflow создает воркфлоу для зафиксированного выбора слотов.
// Идентификатор брони генерируется здесь и не меняется на протяжении
// всех попыток оплаты: журнал использует его для защиты от дублей.
func NewWorkflow(
	userID int64,
	turfID int64,
	fieldConfig domain.FieldConfiguration,
	date time.Time,
	hours []int,
	customerName, customerEmail, customerPhone *string,
	ledger AvailabilityLedger,
	paymentsClient PaymentsClient,
	logger Logger,
) (*Workflow, error) {
	if len(hours) == 0 {
		return nil, ErrEmptySelection
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	return &Workflow{
		bookingID:     "BK-" + uuid.NewString(),
		userID:        userID,
		turfID:        turfID,
		fieldConfig:   fieldConfig,
		date:          date,
		hours:         sorted,
		amount:        domain.TotalForHours(sorted, fieldConfig),
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		state:         StateIdle,
		ledger:        ledger,
		payments:      paymentsClient,
		logger:        logger,
	}, nil
}

// State возвращает текущее состояние воркфлоу
func (w *Workflow) State() State {
	return w.state
}

// BookingID возвращает идентификатор будущей брони
func (w *Workflow) BookingID() string {
	return w.bookingID
}

// Amount возвращает зафиксированную стоимость выбора
func (w *Workflow) Amount() float64 {
	return w.amount
}

// Begin переводит воркфлоу к выбору способа оплаты
func (w *Workflow) Begin() error {
	if w.state != StateIdle {
		return fmt.Errorf("%w: Begin from %s", ErrInvalidTransition, w.state)
	}
	w.state = StateAwaitingMethodChoice
	return nil
}

// PayAtVenue фиксирует бронь с оплатой на месте (paymentStatus = pending).
// При конфликте слотов запись не создается, воркфлоу возвращается к выбору
// способа оплаты, а ошибка несет список занятых часов.
func (w *Workflow) PayAtVenue(ctx context.Context) (*Response, error) {
	if w.state == StateSettled {
		w.logger.Info("PayAtVenue: booking_id=%s already settled, short-circuit", w.bookingID)
		return w.result, nil
	}
	if w.state != StateAwaitingMethodChoice && w.state != StateFailed {
		return nil, fmt.Errorf("%w: PayAtVenue from %s", ErrInvalidTransition, w.state)
	}

	w.state = StateManualPay

	booking := w.buildBooking(domain.StatusPending, nil)
	if err := w.ledger.Commit(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			w.logger.Warn("PayAtVenue: booking_id=%s lost the race: %v", w.bookingID, err)
			w.state = StateAwaitingMethodChoice
			return nil, err
		}
		w.logger.Error("PayAtVenue: booking_id=%s ledger error: %v", w.bookingID, err)
		w.state = StateFailed
		return nil, fmt.Errorf("%w: PayAtVenue - ledger error: %v", ErrInternal, err)
	}

	w.settle(booking)
	w.logger.Info("PayAtVenue: booking_id=%s settled, amount=%.2f", w.bookingID, w.amount)
	return w.result, nil
}

// PayOnline проводит онлайн-оплату и фиксирует бронь (paymentStatus = completed).
// Отказ провайдера переводит воркфлоу в Failed без записи в журнал, повтор разрешен.
// Отмена пользователем завершает воркфлоу без записи в журнал.
// Конфликт слотов после успешного списания - ReconciliationError: он никогда
// не гасится молча и требует возврата средств через поддержку.
func (w *Workflow) PayOnline(ctx context.Context) (*Response, error) {
	if w.state == StateSettled {
		w.logger.Info("PayOnline: booking_id=%s already settled, short-circuit", w.bookingID)
		return w.result, nil
	}
	if w.state != StateAwaitingMethodChoice && w.state != StateFailed {
		return nil, fmt.Errorf("%w: PayOnline from %s", ErrInvalidTransition, w.state)
	}

	w.state = StateOnlinePay

	charge, err := w.payments.Charge(ctx, payments.ChargeRequest{
		Amount:        w.amount,
		Currency:      paymentCurrency,
		Reference:     w.bookingID,
		TurfID:        w.turfID,
		Date:          w.date.Format(domain.DateFormat),
		SlotHours:     w.hours,
		CustomerName:  ptr.Deref(w.customerName, ""),
		CustomerEmail: ptr.Deref(w.customerEmail, ""),
		CustomerPhone: ptr.Deref(w.customerPhone, ""),
	})
	if err != nil {
		w.logger.Error("PayOnline: booking_id=%s provider error: %v", w.bookingID, err)
		w.state = StateFailed
		if errors.Is(err, payments.ErrProviderUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
		}
		return nil, fmt.Errorf("%w: PayOnline - provider error: %v", ErrInternal, err)
	}

	switch charge.Status {
	case payments.ChargeStatusFailure:
		w.logger.Warn("PayOnline: booking_id=%s payment failed: %s", w.bookingID, charge.FailureReason)
		w.state = StateFailed
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, charge.FailureReason)
	case payments.ChargeStatusCancelled:
		w.logger.Info("PayOnline: booking_id=%s payment cancelled by user", w.bookingID)
		w.state = StateCancelled
		return nil, ErrPaymentCancelled
	}

	// Деньги списаны, фиксируем бронь
	booking := w.buildBooking(domain.StatusCompleted, &charge.ProviderTransactionID)
	if err := w.ledger.Commit(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotNotAvailable) {
			w.state = StateFailed

			var conflict *domain.SlotConflictError
			reconciliation := &ReconciliationError{
				BookingID:             w.bookingID,
				ProviderTransactionID: charge.ProviderTransactionID,
			}
			if errors.As(err, &conflict) {
				reconciliation.ConflictingHours = conflict.Hours
			}

			w.logger.Error("PayOnline: booking_id=%s RECONCILIATION REQUIRED: charged provider_txn=%s but slots taken: %v",
				w.bookingID, charge.ProviderTransactionID, err)
			return nil, reconciliation
		}
		w.logger.Error("PayOnline: booking_id=%s ledger error after successful charge: %v", w.bookingID, err)
		w.state = StateFailed
		return nil, &ReconciliationError{
			BookingID:             w.bookingID,
			ProviderTransactionID: charge.ProviderTransactionID,
		}
	}

	w.settle(booking)
	w.logger.Info("PayOnline: booking_id=%s settled, amount=%.2f, provider_txn=%s",
		w.bookingID, w.amount, charge.ProviderTransactionID)
	return w.result, nil
}

// Abandon прерывает воркфлоу до фиксации брони.
// Допустим из любого нетерминального состояния, записи в журнал не оставляет.
func (w *Workflow) Abandon() error {
	switch w.state {
	case StateCancelled:
		return nil
	case StateSettled:
		return fmt.Errorf("%w: Abandon from %s", ErrInvalidTransition, w.state)
	}

	w.logger.Info("Abandon: booking_id=%s abandoned from state=%s", w.bookingID, w.state)
	w.state = StateCancelled
	return nil
}

// buildBooking синтезирует запись журнала из снимка выбора
func (w *Workflow) buildBooking(status domain.PaymentStatus, paymentRef *string) *domain.Booking {
	return &domain.Booking{
		BookingID:     w.bookingID,
		UserID:        w.userID,
		TurfID:        w.turfID,
		FieldConfigID: w.fieldConfig.ID,
		Date:          w.date,
		Type:          domain.TypeSlots,
		SlotHours:     w.hours,
		Amount:        w.amount,
		PaymentStatus: status,
		PaymentRef:    paymentRef,
		CustomerName:  w.customerName,
		CustomerEmail: w.customerEmail,
		CustomerPhone: w.customerPhone,
	}
}

func (w *Workflow) settle(booking *domain.Booking) {
	w.state = StateSettled
	w.result = &Response{
		BookingID:     booking.BookingID,
		TurfID:        booking.TurfID,
		FieldConfigID: booking.FieldConfigID,
		Date:          booking.Date.Format(domain.DateFormat),
		SlotHours:     booking.SlotHours,
		Amount:        booking.Amount,
		PaymentStatus: string(booking.PaymentStatus),
		PaymentRef:    booking.PaymentRef,
	}
}
