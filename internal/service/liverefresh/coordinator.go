package liverefresh

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
)

// Интервалы работы координатора
const (
	// DefaultDebounce окно слияния всплесков событий в одну пересборку
	DefaultDebounce = 200 * time.Millisecond

	// DefaultPollInterval период фоновой пересборки сетки
	// Страхует от пропущенных событий
	DefaultPollInterval = 2 * time.Second
)

// Snapshot версионированный снимок сетки слотов
type Snapshot struct {
	Version uint64
	Board   *get_slot_board.Response
}

// Coordinator координатор живого обновления сетки слотов
// Пересобирает сетку по событиям изменения данных (с дебаунсом) и по таймеру.
// Каждая пересборка получает монотонно растущую версию; снимок с версией не
// новее текущей отбрасывается, поэтому отставшая пересборка не затирает свежую
type Coordinator struct {
	source   BoardSource
	events   EventSource
	debounce time.Duration
	poll     time.Duration
	logger   Logger

	touchCh chan struct{}

	mu      sync.Mutex
	version uint64
	current *Snapshot
	subs    map[chan *Snapshot]struct{}
	closed  bool
}

// NewCoordinator создает новый координатор
func NewCoordinator(source BoardSource, events EventSource, logger Logger) *Coordinator {
	return &Coordinator{
		source:   source,
		events:   events,
		debounce: DefaultDebounce,
		poll:     DefaultPollInterval,
		logger:   logger,
		touchCh:  make(chan struct{}, 1),
		subs:     make(map[chan *Snapshot]struct{}),
	}
}

// NewCoordinatorWithIntervals создает координатор с заданными интервалами (для тестов)
func NewCoordinatorWithIntervals(source BoardSource, events EventSource, debounce, poll time.Duration, logger Logger) *Coordinator {
	c := NewCoordinator(source, events, logger)
	c.debounce = debounce
	c.poll = poll
	return c
}

// Run запускает цикл координатора
// Блокируется до отмены контекста; запускать в отдельной горутине
func (c *Coordinator) Run(ctx context.Context) {
	eventCh := c.events.Subscribe()
	defer c.events.Unsubscribe(eventCh)

	// Первичная сборка, чтобы подписчики сразу получали снимок
	c.reconcile(ctx)

	debounce := time.NewTimer(c.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	poll := time.NewTicker(c.poll)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("LiveRefresh: coordinator stopped")
			return
		case <-eventCh:
			debounce.Reset(c.debounce)
		case <-c.touchCh:
			debounce.Reset(c.debounce)
		case <-debounce.C:
			c.reconcile(ctx)
		case <-poll.C:
			c.reconcile(ctx)
		}
	}
}

// Touch запрашивает внеочередную пересборку сетки
// Неблокирующий; сливается с другими запросами через дебаунс
func (c *Coordinator) Touch() {
	select {
	case c.touchCh <- struct{}{}:
	default:
	}
}

// Current возвращает последний опубликованный снимок
// До первой пересборки возвращает nil
func (c *Coordinator) Current() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe подписывает на новые снимки сетки
// Возвращает канал снимков и текущий снимок (может быть nil)
// Канал буферизован на один снимок: при отставании подписчика старый снимок
// заменяется новым, промежуточные версии не копятся
func (c *Coordinator) Subscribe() (chan *Snapshot, *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan *Snapshot, 1)
	if !c.closed {
		c.subs[ch] = struct{}{}
	} else {
		close(ch)
	}
	return ch, c.current
}

// Unsubscribe отписывает канал от снимков
func (c *Coordinator) Unsubscribe(ch chan *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.subs[ch]; ok {
		delete(c.subs, ch)
		close(ch)
	}
}

// Close закрывает все подписки
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true

	for ch := range c.subs {
		delete(c.subs, ch)
		close(ch)
	}
}

// reconcile пересобирает сетку и публикует снимок
func (c *Coordinator) reconcile(ctx context.Context) {
	// Версию резервируем до загрузки: параллельная пересборка, стартовавшая
	// позже, получит большую версию и выиграет публикацию
	c.mu.Lock()
	c.version++
	version := c.version
	c.mu.Unlock()

	board, err := c.source.Execute(ctx)
	if err != nil {
		c.logger.Error("LiveRefresh: reconciliation v%d failed: %v", version, err)
		return
	}

	c.publish(&Snapshot{Version: version, Board: board})
}

// publish публикует снимок, если он новее текущего
func (c *Coordinator) publish(snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.current != nil && snap.Version <= c.current.Version {
		c.logger.Warn("LiveRefresh: discarding stale snapshot v%d (current v%d)",
			snap.Version, c.current.Version)
		return
	}

	c.current = snap

	for ch := range c.subs {
		select {
		case ch <- snap:
		default:
			// Подписчик отстал: вытесняем его непрочитанный снимок свежим
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
