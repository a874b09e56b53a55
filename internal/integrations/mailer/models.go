package mailer

// BookingConfirmation письмо-подтверждение бронирования
type BookingConfirmation struct {
	To          string `json:"to"`
	Name        string `json:"name"`
	ProjectName string `json:"project_name,omitempty"`
	SlotDate    string `json:"slot_date"`
	SlotTime    string `json:"slot_time"`
	BookingID   string `json:"booking_id"`
}

// ErrorResponse модель ошибки от сервиса рассылки
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
