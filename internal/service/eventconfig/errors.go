package eventconfig

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации мероприятия
	ErrInvalidConfig = errors.New("invalid event config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("eventconfig service: internal error")
)
