package payments

// ChargeStatus статус платежа у провайдера
type ChargeStatus string

const (
	ChargeStatusSuccess   ChargeStatus = "success"
	ChargeStatusFailure   ChargeStatus = "failure"
	ChargeStatusCancelled ChargeStatus = "cancelled"
)

// ChargeRequest запрос на проведение платежа
type ChargeRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Reference string  `json:"reference"`
	TurfID    int64   `json:"turfId"`
	Date      string  `json:"date"`
	SlotHours []int   `json:"slotHours,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// ChargeResult результат проведения платежа
type ChargeResult struct {
	Status                ChargeStatus `json:"status"`
	ProviderTransactionID string       `json:"providerTransactionId"`
	FailureReason         string       `json:"failureReason,omitempty"`
}

// Succeeded сообщает, что провайдер подтвердил списание средств
func (r *ChargeResult) Succeeded() bool {
	return r.Status == ChargeStatusSuccess
}
