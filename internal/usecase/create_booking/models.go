package create_booking

import (
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// Request модель запроса на бронирование слота
type Request struct {
	UserID         string              // ID пользователя, оформляющего бронирование
	SlotID         string              // Стабильный ID слота (дата + ID шаблона)
	TeamLeadName   string              // Имя тимлида команды
	TeamLeadRollNo string              // Номер зачетки тимлида
	ProjectName    string              // Название проекта
	TeamMembers    []domain.TeamMember // Состав команды (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string    // ID созданного бронирования
	UserID      string    // ID пользователя
	SlotID      string    // ID слота
	SlotDate    time.Time // Дата слота
	SlotTime    string    // Интервал слота
	Status      string    // Статус бронирования
	ProjectName string    // Название проекта
	CreatedAt   time.Time // Время создания
}
