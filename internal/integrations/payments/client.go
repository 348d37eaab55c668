package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного провайдера
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр платежного клиента
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Charge проводит онлайн-платеж у провайдера.
// Результат с любым статусом (success/failure/cancelled) не является ошибкой:
// ошибка возвращается только при недоступности провайдера или некорректном ответе.
func (c *Client) Charge(ctx context.Context, chargeReq ChargeRequest) (*ChargeResult, error) {
	url := fmt.Sprintf("%s/v1/charges", c.baseURL)

	payload, err := json.Marshal(chargeReq)
	if err != nil {
		return nil, fmt.Errorf("%w: Charge - failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: Charge - failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.Info("Charging %.2f for reference=%s", chargeReq.Amount, chargeReq.Reference)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Payment provider unreachable for reference=%s: %v", chargeReq.Reference, err)
		return nil, fmt.Errorf("%w: reference=%s, error=%v", ErrProviderUnavailable, chargeReq.Reference, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return nil, fmt.Errorf("%w: status code %d", ErrProviderUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var result ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: Charge - failed to decode response: %v", ErrInvalidResponse, err)
	}

	switch result.Status {
	case ChargeStatusSuccess, ChargeStatusFailure, ChargeStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown charge status %q", ErrInvalidResponse, result.Status)
	}

	c.log.Info("Charge finished: reference=%s, status=%s, provider_txn=%s",
		chargeReq.Reference, result.Status, result.ProviderTransactionID)

	return &result, nil
}
