package get_slot_board

import "errors"

var (
	// ErrConfigUnavailable возвращается, когда конфигурация мероприятия недоступна
	// и резервная конфигурация не задана
	ErrConfigUnavailable = errors.New("get_slot_board: event config unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_board: internal error")
)
