package get_slot_board

import (
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// Response модель ответа с сеткой слотов
type Response struct {
	SystemActive bool            // Включена ли система бронирования
	Dates        []string        // Даты мероприятия в порядке конфигурации
	OpenDates    map[string]bool // Открыто ли окно записи на каждую дату
	Slots        []domain.Slot   // Все слоты сетки
	GeneratedAt  time.Time       // Момент сборки сетки
}
