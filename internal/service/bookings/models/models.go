package models

import (
	"errors"
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе оплаты
	ErrInvalidStatus = errors.New("invalid payment status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на историю бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetTurfBookingsRequest запрос на бронирования площадки (для владельца)
type GetTurfBookingsRequest struct {
	UserID          int64      `json:"userId"`
	TurfID          int64      `json:"turfId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу оплаты (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTurfBookingsRequest) ToDomainFilter() (domain.TurfBookingsFilter, error) {
	filter := domain.TurfBookingsFilter{
		TurfID:          r.TurfID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainPaymentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	BookingID     string `json:"bookingId"`
	UserID        int64  `json:"userId"`
	TurfID        int64  `json:"turfId"`
	FieldConfigID int64  `json:"fieldConfigId"`
	Date          string `json:"date"` // "2025-06-15"
	Type          string `json:"type"` // "slots" | "flexible"

	SlotHours     []int   `json:"slotHours,omitempty"`
	FlexStartTime *string `json:"flexStartTime,omitempty"` // "10:00"
	FlexEndTime   *string `json:"flexEndTime,omitempty"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentRef    *string `json:"paymentRef,omitempty"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		BookingID:          b.BookingID,
		UserID:             b.UserID,
		TurfID:             b.TurfID,
		FieldConfigID:      b.FieldConfigID,
		Date:               b.Date.Format(domain.DateFormat),
		Type:               string(b.Type),
		SlotHours:          b.SlotHours,
		Amount:             b.Amount,
		PaymentStatus:      string(b.PaymentStatus),
		PaymentRef:         b.PaymentRef,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.FlexStartTime != nil {
		s := b.FlexStartTime.String()
		resp.FlexStartTime = &s
	}
	if b.FlexEndTime != nil {
		s := b.FlexEndTime.String()
		resp.FlexEndTime = &s
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(status)

	validStatuses := []domain.PaymentStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusFailed,
		domain.StatusRefunded,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
