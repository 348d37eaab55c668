package create_booking

import (
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
	commitReservation "github.com/sporzo/turf-booking-service/internal/usecase/commit_reservation"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID        int64  `json:"turfId"`
	FieldConfigID int64  `json:"fieldConfigId"`
	Date          string `json:"date"` // "2025-06-15"
	SlotHours     []int  `json:"slotHours"`
	PaymentMethod string `json:"paymentMethod"` // "manual" | "online"

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID     string  `json:"bookingId"`
	TurfID        int64   `json:"turfId"`
	FieldConfigID int64   `json:"fieldConfigId"`
	Date          string  `json:"date"`
	SlotHours     []int   `json:"slotHours"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentRef    *string `json:"paymentRef,omitempty"`
}

// ConflictResponse ответ 409 с занятыми часами, чтобы клиент перерисовал сетку слотов
type ConflictResponse struct {
	Error            string `json:"error"`
	ConflictingHours []int  `json:"conflictingHours,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*commitReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &commitReservation.Request{
		UserID:        userID,
		TurfID:        r.TurfID,
		FieldConfigID: r.FieldConfigID,
		Date:          date,
		SlotHours:     r.SlotHours,
		PaymentMethod: commitReservation.PaymentMethod(r.PaymentMethod),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitReservation.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:     resp.BookingID,
		TurfID:        resp.TurfID,
		FieldConfigID: resp.FieldConfigID,
		Date:          resp.Date,
		SlotHours:     resp.SlotHours,
		Amount:        resp.Amount,
		PaymentStatus: resp.PaymentStatus,
		PaymentRef:    resp.PaymentRef,
	}
}
