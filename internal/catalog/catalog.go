package catalog

import (
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/types"
)

// Entry один слот каталога: дата, шаблон и стабильный составной ID
type Entry struct {
	ID    string
	Date  string
	Label string
}

// SlotID собирает составной идентификатор слота из даты и ID шаблона
func SlotID(date, templateID string) string {
	return date + "-" + templateID
}

// Build разворачивает конфигурацию события в полный упорядоченный каталог слотов:
// декартово произведение дат и шаблонов слотов этой даты
// Чистая функция; пустая конфигурация дает пустой каталог
func Build(cfg *domain.EventConfig) []Entry {
	entries := make([]Entry, 0, len(cfg.Dates)*len(cfg.DefaultSlots))
	for _, date := range cfg.Dates {
		for _, tpl := range cfg.SlotsFor(date) {
			entries = append(entries, Entry{
				ID:    SlotID(date, tpl.ID),
				Date:  date,
				Label: tpl.Label,
			})
		}
	}
	return entries
}

// WindowOpen проверяет, открыто ли окно записи на дату в момент now:
// прошедшая дата закрыта всегда, будущая открыта всегда, для сегодняшней
// текущее время суток должно попадать в окно (границы включительно)
// Дата без настроенного окна открыта всегда
func WindowOpen(cfg *domain.EventConfig, date string, now time.Time) bool {
	day, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		// Некорректная дата в конфигурации не должна блокировать доску
		return true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case day.Before(today):
		return false
	case day.After(today):
		return true
	}

	window := cfg.WindowFor(date)
	if window == nil {
		return true
	}

	return window.Contains(types.NewTimeString(now))
}
