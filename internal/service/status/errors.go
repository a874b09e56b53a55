package status

import "errors"

var (
	// ErrInvalidDuration возвращается, когда длительность таймера вне допустимых границ
	ErrInvalidDuration = errors.New("invalid timer duration")

	// ErrTimerNotArmed возвращается при попытке отменить не установленный таймер
	ErrTimerNotArmed = errors.New("timer is not armed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("status service: internal error")
)
