package domain

import (
	"fmt"

	"github.com/m04kA/IRP-BookingService/pkg/types"
)

// SlotTemplate шаблон временного слота в рамках одной даты
type SlotTemplate struct {
	ID    string `json:"id"`
	Label string `json:"time"` // человекочитаемая метка, например "1:45 PM - 2:15 PM"
}

// EnrollmentWindow окно времени суток, в течение которого открыта запись на дату
type EnrollmentWindow struct {
	Start types.TimeString `json:"startTime"`
	End   types.TimeString `json:"endTime"`
}

// Contains проверяет, что время суток попадает в окно (границы включительно)
func (w EnrollmentWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && !t.IsAfter(w.End)
}

// EventConfig конфигурация события: даты, шаблоны слотов, окна записи, инструкции
// Редактируется администратором, читается при каждой сборке доски слотов
type EventConfig struct {
	Title       string   `json:"eventTitle"`
	Subtitle    string   `json:"eventSubtitle"`
	Description string   `json:"eventDescription"`
	Dates       []string `json:"eventDates"` // YYYY-MM-DD, упорядочены

	// DefaultSlots применяются к датам, для которых нет записи в DateSlots
	DefaultSlots []SlotTemplate            `json:"timeSlots"`
	DateSlots    map[string][]SlotTemplate `json:"dateSpecificSlots,omitempty"`

	// Windows окна записи по датам; GlobalWindow применяется к датам без своего окна
	// Дата без окна (ни своего, ни глобального) открыта всегда
	Windows      map[string]EnrollmentWindow `json:"enrollmentTimes,omitempty"`
	GlobalWindow *EnrollmentWindow           `json:"globalEnrollmentTime,omitempty"`

	Instructions []string `json:"instructions"`
}

// SlotsFor возвращает упорядоченный список шаблонов слотов для даты
func (c *EventConfig) SlotsFor(date string) []SlotTemplate {
	if slots, ok := c.DateSlots[date]; ok {
		return slots
	}
	return c.DefaultSlots
}

// WindowFor возвращает окно записи для даты: сначала своё, затем глобальное
// nil означает, что запись на дату открыта всегда
func (c *EventConfig) WindowFor(date string) *EnrollmentWindow {
	if w, ok := c.Windows[date]; ok {
		window := w
		return &window
	}
	return c.GlobalWindow
}

// Validate проверяет инварианты конфигурации
// Каждая дата из DateSlots и Windows должна присутствовать в списке дат
func (c *EventConfig) Validate() error {
	known := make(map[string]struct{}, len(c.Dates))
	for _, date := range c.Dates {
		known[date] = struct{}{}
	}

	for date := range c.DateSlots {
		if _, ok := known[date]; !ok {
			return fmt.Errorf("event config: date-specific slots reference unknown date %s", date)
		}
	}

	for date, w := range c.Windows {
		if _, ok := known[date]; !ok {
			return fmt.Errorf("event config: enrollment window references unknown date %s", date)
		}
		if err := w.Start.Validate(); err != nil {
			return fmt.Errorf("event config: window for %s: %w", date, err)
		}
		if err := w.End.Validate(); err != nil {
			return fmt.Errorf("event config: window for %s: %w", date, err)
		}
	}

	if c.GlobalWindow != nil {
		if err := c.GlobalWindow.Start.Validate(); err != nil {
			return fmt.Errorf("event config: global window: %w", err)
		}
		if err := c.GlobalWindow.End.Validate(); err != nil {
			return fmt.Errorf("event config: global window: %w", err)
		}
	}

	return nil
}
