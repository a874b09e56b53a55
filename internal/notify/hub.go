package notify

import "sync"

// Имена таблиц-источников событий
const (
	TableBookings    = "bookings"
	TableSettings    = "admin_settings"
	TableEventConfig = "event_config"
)

// Event уведомление об изменении таблицы
type Event struct {
	Table string
}

// Hub внутрипроцессный broadcaster событий изменения данных
// Репозитории/сервисы публикуют события после успешной записи; подписчики
// (координатор обновления, websocket-клиенты) получают их через каналы
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewHub создает новый hub
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe регистрирует подписчика и возвращает его канал
// Канал буферизован; события для переполненного подписчика отбрасываются,
// отставший подписчик догонит состояние через fallback-поллинг
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe снимает подписку и закрывает канал
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish рассылает событие всем подписчикам без блокировки
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
