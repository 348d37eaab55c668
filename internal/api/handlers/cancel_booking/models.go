package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
