package domain

import "time"

// SystemStatus singleton-состояние системы бронирования
type SystemStatus struct {
	ID           string
	SystemActive bool

	// AutoDeactivateAt момент будущего автоотключения системы; nil - таймер не взведён
	AutoDeactivateAt *time.Time

	UpdatedAt time.Time
}

// TimerArmed проверяет, взведён ли таймер автоотключения
func (s *SystemStatus) TimerArmed() bool {
	return s.AutoDeactivateAt != nil
}

// TimerRemaining возвращает оставшееся время до автоотключения
// Для невзведённого или истекшего таймера возвращает 0
func (s *SystemStatus) TimerRemaining(now time.Time) time.Duration {
	if s.AutoDeactivateAt == nil {
		return 0
	}
	remaining := s.AutoDeactivateAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
