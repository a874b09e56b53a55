package models

import "time"

// StatusResponse текущее состояние системы бронирования
type StatusResponse struct {
	SystemActive     bool       `json:"systemActive"`
	AutoDeactivateAt *time.Time `json:"autoDeactivateAt,omitempty"`
	RemainingSeconds *int64     `json:"remainingSeconds,omitempty"`
}

// ToggleRequest запрос на включение или выключение системы
type ToggleRequest struct {
	Active bool `json:"active"`
}

// SetTimerRequest запрос на установку таймера автоотключения
type SetTimerRequest struct {
	Minutes int `json:"minutes"`
}
