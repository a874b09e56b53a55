package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом рассылки писем
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента рассылки
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет письмо-подтверждение бронирования
func (c *Client) SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error {
	url := fmt.Sprintf("%s/internal/mail/booking-confirmation", c.baseURL)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid message payload", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// SendBookingConfirmationWithGracefulDegradation отправляет письмо с graceful degradation
// При недоступности сервиса рассылки возвращает ErrServiceDegraded:
// бронирование уже зафиксировано, письмо теряется, но операция не откатывается
func (c *Client) SendBookingConfirmationWithGracefulDegradation(ctx context.Context, msg BookingConfirmation) error {
	c.log.Info("Sending booking confirmation for booking_id=%s", msg.BookingID)

	if err := c.SendBookingConfirmation(ctx, msg); err != nil {
		// Недоступность сервиса, timeout, некорректный ответ: применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Mailer unavailable, applying graceful degradation for booking_id=%s: %v", msg.BookingID, err)
		return fmt.Errorf("%w: booking_id=%s, error=%v", ErrServiceDegraded, msg.BookingID, err)
	}

	c.log.Info("Successfully sent booking confirmation for booking_id=%s", msg.BookingID)
	return nil
}
