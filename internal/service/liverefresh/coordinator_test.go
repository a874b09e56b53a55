package liverefresh

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/notify"
	"github.com/m04kA/IRP-BookingService/internal/usecase/get_slot_board"
)

type countingSource struct {
	calls atomic.Int64
}

func (s *countingSource) Execute(_ context.Context) (*get_slot_board.Response, error) {
	n := s.calls.Add(1)
	return &get_slot_board.Response{
		SystemActive: true,
		GeneratedAt:  time.Unix(n, 0),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func waitForSnapshot(t *testing.T, ch chan *Snapshot) *Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestRunPublishesInitialSnapshot(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, 10*time.Millisecond, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	require.Eventually(t, func() bool {
		return c.Current() != nil
	}, 2*time.Second, 5*time.Millisecond)

	snap := c.Current()
	require.Equal(t, uint64(1), snap.Version)
	require.True(t, snap.Board.SystemActive)
}

func TestEventTriggersDebouncedReconcile(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, 20*time.Millisecond, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	require.Eventually(t, func() bool { return c.Current() != nil }, 2*time.Second, 5*time.Millisecond)

	ch, _ := c.Subscribe()
	defer c.Unsubscribe(ch)

	// Всплеск событий сливается дебаунсом в одну пересборку
	for i := 0; i < 5; i++ {
		hub.Publish(notify.Event{Table: notify.TableBookings})
	}

	snap := waitForSnapshot(t, ch)
	require.Equal(t, uint64(2), snap.Version)
	require.Equal(t, int64(2), source.calls.Load())
}

func TestTouchTriggersReconcile(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, 10*time.Millisecond, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	require.Eventually(t, func() bool { return c.Current() != nil }, 2*time.Second, 5*time.Millisecond)

	ch, _ := c.Subscribe()
	defer c.Unsubscribe(ch)

	c.Touch()
	snap := waitForSnapshot(t, ch)
	require.Equal(t, uint64(2), snap.Version)
}

func TestPollReconcilesWithoutEvents(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, time.Hour, 15*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	require.Eventually(t, func() bool {
		snap := c.Current()
		return snap != nil && snap.Version >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPublishDiscardsStaleSnapshot(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, time.Hour, time.Hour, nopLogger{})

	fresh := &get_slot_board.Response{GeneratedAt: time.Unix(100, 0)}
	stale := &get_slot_board.Response{GeneratedAt: time.Unix(50, 0)}

	c.publish(&Snapshot{Version: 5, Board: fresh})
	c.publish(&Snapshot{Version: 3, Board: stale})

	snap := c.Current()
	require.Equal(t, uint64(5), snap.Version)
	require.Equal(t, fresh, snap.Board)
}

func TestSubscriberKeepsOnlyLatestSnapshot(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, time.Hour, time.Hour, nopLogger{})

	ch, current := c.Subscribe()
	defer c.Unsubscribe(ch)
	require.Nil(t, current)

	// Подписчик не читает: непрочитанный снимок вытесняется свежим
	c.publish(&Snapshot{Version: 1, Board: &get_slot_board.Response{}})
	c.publish(&Snapshot{Version: 2, Board: &get_slot_board.Response{}})
	c.publish(&Snapshot{Version: 3, Board: &get_slot_board.Response{}})

	snap := waitForSnapshot(t, ch)
	require.Equal(t, uint64(3), snap.Version)
	require.Empty(t, ch)
}

func TestCloseClosesSubscribers(t *testing.T) {
	source := &countingSource{}
	hub := notify.NewHub()
	c := NewCoordinatorWithIntervals(source, hub, time.Hour, time.Hour, nopLogger{})

	ch, _ := c.Subscribe()
	c.Close()

	_, open := <-ch
	require.False(t, open)

	// Подписка после закрытия сразу возвращает закрытый канал
	late, _ := c.Subscribe()
	_, open = <-late
	require.False(t, open)
}
