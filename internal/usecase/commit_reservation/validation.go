package commit_reservation

import "fmt"

// validateRequest проверяет структурную корректность запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfId must be positive", ErrInvalidInput)
	}
	if req.FieldConfigID <= 0 {
		return fmt.Errorf("%w: fieldConfigId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.SlotHours) == 0 {
		return ErrEmptySelection
	}
	for _, h := range req.SlotHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("%w: slot hour %d out of range", ErrInvalidInput, h)
		}
	}

	switch req.PaymentMethod {
	case PaymentMethodManual, PaymentMethodOnline:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return nil
}
