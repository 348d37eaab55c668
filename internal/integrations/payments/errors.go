package payments

import "errors"

var (
	// ErrProviderUnavailable возвращается при недоступности платежного провайдера
	ErrProviderUnavailable = errors.New("payments client: provider unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
