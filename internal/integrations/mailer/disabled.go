package mailer

import "context"

// DisabledClient заглушка для окружений без сервиса рассылки
// Письма не отправляются, бронирования фиксируются без подтверждения
type DisabledClient struct {
	log Logger
}

// NewDisabledClient создает клиент с отключенной рассылкой
func NewDisabledClient(log Logger) *DisabledClient {
	return &DisabledClient{log: log}
}

func (c *DisabledClient) SendBookingConfirmationWithGracefulDegradation(ctx context.Context, msg BookingConfirmation) error {
	c.log.Debug("Mailer disabled, skipping confirmation for booking_id=%s", msg.BookingID)
	return nil
}
