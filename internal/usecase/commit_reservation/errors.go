package commit_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection возвращается при попытке оформить бронь без выбранных слотов
	ErrEmptySelection = errors.New("commit_reservation: empty slot selection")

	// ErrInvalidTransition возвращается при недопустимом переходе воркфлоу
	ErrInvalidTransition = errors.New("commit_reservation: invalid workflow transition")

	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("commit_reservation: turf not found")

	// ErrFieldConfigNotFound возвращается для неизвестной конфигурации поля
	ErrFieldConfigNotFound = errors.New("commit_reservation: field configuration not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_reservation: invalid input")

	// ErrPaymentFailed возвращается, когда провайдер отклонил платеж
	ErrPaymentFailed = errors.New("commit_reservation: payment failed")

	// ErrPaymentCancelled возвращается, когда пользователь прервал оплату
	ErrPaymentCancelled = errors.New("commit_reservation: payment cancelled")

	// ErrPaymentUnavailable возвращается при недоступности платежного провайдера
	ErrPaymentUnavailable = errors.New("commit_reservation: payment provider unavailable")

	// ErrReconciliationRequired возвращается, когда деньги списаны, а слоты занять не удалось.
	// Такая ситуация никогда не гасится молча: нужен возврат средств или ручной разбор.
	ErrReconciliationRequired = errors.New("commit_reservation: payment succeeded but slots were taken, reconciliation required")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("commit_reservation: internal error")
)

// ReconciliationError несет контекст для возврата средств:
// идентификатор брони, транзакцию провайдера и занятые часы.
// Разворачивается в ErrReconciliationRequired.
type ReconciliationError struct {
	BookingID             string
	ProviderTransactionID string
	ConflictingHours      []int
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%v: booking_id=%s provider_txn=%s conflicting_hours=%v",
		ErrReconciliationRequired, e.BookingID, e.ProviderTransactionID, e.ConflictingHours)
}

func (e *ReconciliationError) Unwrap() error {
	return ErrReconciliationRequired
}
