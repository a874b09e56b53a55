package stream_events

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	getSlotBoard "github.com/m04kA/IRP-BookingService/internal/api/handlers/get_slot_board"
	"github.com/m04kA/IRP-BookingService/internal/service/liverefresh"
)

// Таймауты websocket соединения
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Handler struct {
	coordinator BoardCoordinator
	logger      Logger
	upgrader    websocket.Upgrader
}

func NewHandler(coordinator BoardCoordinator, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Страница бронирования раздается с другого origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle GET /api/v1/events
// Поднимает websocket и транслирует клиенту версионированные снимки сетки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /events - Upgrade failed: %v", err)
		return
	}

	h.logger.Info("GET /events - Client connected: %s", conn.RemoteAddr())

	snapshots, current := h.coordinator.Subscribe()
	defer h.coordinator.Unsubscribe(snapshots)

	// Читатель нужен только для обнаружения закрытия и pong фреймов
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()

	// Сразу отдаем текущий снимок, чтобы клиент не ждал первого изменения
	if current != nil {
		if err := h.writeSnapshot(conn, current); err != nil {
			h.logger.Warn("GET /events - Initial write failed: %v", err)
			return
		}
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			h.logger.Info("GET /events - Client disconnected: %s", conn.RemoteAddr())
			return
		case snap, ok := <-snapshots:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			if err := h.writeSnapshot(conn, snap); err != nil {
				h.logger.Warn("GET /events - Write failed: %v", err)
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn, snap *liverefresh.Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(getSlotBoard.FromUseCaseResponse(snap.Version, snap.Board))
}
