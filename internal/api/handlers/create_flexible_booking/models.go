package create_flexible_booking

import (
	"time"

	"github.com/sporzo/turf-booking-service/internal/domain"
	createFlexible "github.com/sporzo/turf-booking-service/internal/usecase/create_flexible_booking"
)

// CreateFlexibleBookingRequest HTTP request model
type CreateFlexibleBookingRequest struct {
	TurfID        int64  `json:"turfId"`
	FieldConfigID int64  `json:"fieldConfigId"`
	Date          string `json:"date"`      // "2025-06-15"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "13:00"

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// FlexibleBookingResponse HTTP response model
type FlexibleBookingResponse struct {
	BookingID     string  `json:"bookingId"`
	TurfID        int64   `json:"turfId"`
	FieldConfigID int64   `json:"fieldConfigId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
}

// ConflictResponse ответ 409 с занятыми часами
type ConflictResponse struct {
	Error            string `json:"error"`
	ConflictingHours []int  `json:"conflictingHours,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateFlexibleBookingRequest) ToUseCaseRequest(userID int64) (*createFlexible.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createFlexible.Request{
		UserID:        userID,
		TurfID:        r.TurfID,
		FieldConfigID: r.FieldConfigID,
		Date:          date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createFlexible.Response) *FlexibleBookingResponse {
	return &FlexibleBookingResponse{
		BookingID:     resp.BookingID,
		TurfID:        resp.TurfID,
		FieldConfigID: resp.FieldConfigID,
		Date:          resp.Date,
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		Amount:        resp.Amount,
		PaymentStatus: resp.PaymentStatus,
	}
}
