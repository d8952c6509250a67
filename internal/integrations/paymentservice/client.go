package paymentservice

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

// Client клиент для работы с PaymentService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLatestPayment получает последний платёж пользователя на указанную сумму
func (c *Client) GetLatestPayment(ctx context.Context, userID int64, amount float64) (*Payment, error) {
	url := fmt.Sprintf("%s/internal/users/%d/payments/latest?amount=%.2f", c.baseURL, userID, amount)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payment, nil
}

// GetLatestPaymentWithGracefulDegradation получает платёж с graceful degradation.
// При недоступности PaymentService возвращает ErrServiceDegraded: бронирование
// при этом сохраняется со статусом оплаты pending, а не отклоняется
func (c *Client) GetLatestPaymentWithGracefulDegradation(ctx context.Context, userID int64, amount float64) (*Payment, error) {
	c.log.Info("Fetching latest payment for user_id=%d amount=%.2f", userID, amount)

	payment, err := c.GetLatestPayment(ctx, userID, amount)
	if err != nil {
		// Отсутствие платежа - значимый бизнес-ответ, пробрасываем дальше
		if err == ErrPaymentNotFound {
			c.log.Info("No payment found for user_id=%d", userID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга и т.д.) применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("PaymentService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched payment for user_id=%d, status=%s", userID, payment.PaymentStatus)
	return payment, nil
}
