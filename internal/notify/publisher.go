package notify

// Publisher публикует события изменения данных в хаб
// Реализует узкие интерфейсы нотификаторов сервисного слоя
type Publisher struct {
	hub *Hub
}

// NewPublisher создает публикатор поверх хаба
func NewPublisher(hub *Hub) *Publisher {
	return &Publisher{hub: hub}
}

// BookingsChanged сообщает об изменении бронирований
func (p *Publisher) BookingsChanged() {
	p.hub.Publish(Event{Table: TableBookings})
}

// SettingsChanged сообщает об изменении настроек системы
func (p *Publisher) SettingsChanged() {
	p.hub.Publish(Event{Table: TableSettings})
}

// ConfigChanged сообщает об изменении конфигурации мероприятия
func (p *Publisher) ConfigChanged() {
	p.hub.Publish(Event{Table: TableEventConfig})
}
