package commit_reservation

import "time"

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	// PaymentMethodManual оплата на месте, запись фиксируется со статусом pending
	PaymentMethodManual PaymentMethod = "manual"
	// PaymentMethodOnline онлайн-оплата через провайдера, запись фиксируется со статусом completed
	PaymentMethodOnline PaymentMethod = "online"
)

// Request запрос на оформление бронирования
type Request struct {
	UserID        int64         `json:"userId"`
	TurfID        int64         `json:"turfId"`
	FieldConfigID int64         `json:"fieldConfigId"`
	Date          time.Time     `json:"date"`
	SlotHours     []int         `json:"slotHours"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// Response результат оформления бронирования
type Response struct {
	BookingID     string  `json:"bookingId"`
	TurfID        int64   `json:"turfId"`
	FieldConfigID int64   `json:"fieldConfigId"`
	Date          string  `json:"date"` // "2025-06-15"
	SlotHours     []int   `json:"slotHours"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentRef    *string `json:"paymentRef,omitempty"`
}
