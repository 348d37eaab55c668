package turfcatalog

import (
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

// Client клиент для работы с каталогом площадок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTurf получает площадку с расписанием работы и конфигурациями полей
func (c *Client) GetTurf(ctx context.Context, turfID int64) (*Turf, error) {
	url := fmt.Sprintf("%s/internal/turfs/%d", c.baseURL, turfID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTurf - failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTurf - failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid turf ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrTurfNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var turf Turf
	if err := json.NewDecoder(resp.Body).Decode(&turf); err != nil {
		return nil, fmt.Errorf("%w: GetTurf - failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(turf.FieldConfigs) == 0 {
		c.log.Warn("Turf %d has no field configurations", turfID)
	}

	return &turf, nil
}
