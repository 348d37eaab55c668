package create_flexible_booking

import "time"

// Request запрос на гибкое бронирование непрерывного диапазона времени.
// Гибкий режим - параллельный, более грубый способ брони: вместо дискретных
// слотов резервируется пара начало/конец. Оплата только на месте.
type Request struct {
	UserID        int64     `json:"userId"`
	TurfID        int64     `json:"turfId"`
	FieldConfigID int64     `json:"fieldConfigId"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"startTime"` // "10:00"
	EndTime       string    `json:"endTime"`   // "13:00"

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// Response результат гибкого бронирования
type Response struct {
	BookingID     string  `json:"bookingId"`
	TurfID        int64   `json:"turfId"`
	FieldConfigID int64   `json:"fieldConfigId"`
	Date          string  `json:"date"` // "2025-06-15"
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
}
