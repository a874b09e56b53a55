package get_slot_board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/pkg/ptr"
	"github.com/m04kA/IRP-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.BookingWithUser
	err      error
}

func (r *fakeBookingRepo) GetAllActive(_ context.Context) ([]*domain.BookingWithUser, error) {
	return r.bookings, r.err
}

type fakeConfigRepo struct {
	cfg *domain.EventConfig
	err error
}

func (r *fakeConfigRepo) Get(_ context.Context) (*domain.EventConfig, error) {
	return r.cfg, r.err
}

type fakeSettingsRepo struct {
	status *domain.SystemStatus
	err    error
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.SystemStatus, error) {
	return r.status, r.err
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.EventConfig {
	return &domain.EventConfig{
		Dates: []string{"2025-10-06", "2025-10-07"},
		DefaultSlots: []domain.SlotTemplate{
			{ID: "s1", Label: "1:45 PM - 2:15 PM"},
			{ID: "s2", Label: "2:15 PM - 2:45 PM"},
		},
	}
}

func newBoardUseCase(
	bookings *fakeBookingRepo,
	config *fakeConfigRepo,
	settings *fakeSettingsRepo,
	fallback *domain.EventConfig,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, config, settings, fallback, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func TestExecuteOverlaysBookings(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	booked := &domain.BookingWithUser{
		Booking:      domain.Booking{SlotID: "2025-10-06-s1"},
		UserName:     "Alice",
		TeamLeadName: ptr.Ptr("Bob"),
		ProjectName:  ptr.Ptr("Drone Swarm"),
	}
	uc := newBoardUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingWithUser{booked}},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, resp.SystemActive)
	require.Len(t, resp.Slots, 4)

	taken := resp.Slots[0]
	require.Equal(t, "2025-10-06-s1", taken.ID)
	require.False(t, taken.Available)
	require.Equal(t, "Bob", *taken.BookedBy)
	require.Equal(t, "Drone Swarm", *taken.ProjectName)

	free := resp.Slots[1]
	require.True(t, free.Available)
	require.Nil(t, free.BookedBy)
}

func TestExecuteFallsBackToUserName(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	booked := &domain.BookingWithUser{
		Booking:  domain.Booking{SlotID: "2025-10-06-s2"},
		UserName: "Alice",
	}
	uc := newBoardUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingWithUser{booked}},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Alice", *resp.Slots[1].BookedBy)
}

func TestExecuteOptimisticOnBookingsError(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{err: errors.New("db down")},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeSettingsRepo{err: errors.New("db down")},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.True(t, resp.SystemActive, "settings failure must not hide the board")
	for _, slot := range resp.Slots {
		require.True(t, slot.Available)
	}
}

func TestExecuteUsesFallbackConfig(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{err: errors.New("db down")},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		testConfig(),
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
}

func TestExecuteFailsWithoutAnyConfig(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{err: errors.New("db down")},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	_, err := uc.Execute(context.Background())
	require.ErrorIs(t, err, ErrConfigUnavailable)
}

func TestExecuteComputesOpenDates(t *testing.T) {
	cfg := testConfig()
	cfg.GlobalWindow = &domain.EnrollmentWindow{
		Start: types.TimeString("16:00"),
		End:   types.TimeString("18:00"),
	}

	// Сегодня 2025-10-06, окно записи еще не открылось
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{cfg: cfg},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.False(t, resp.OpenDates["2025-10-06"])
	require.True(t, resp.OpenDates["2025-10-07"], "future date stays open")
}

func TestExecuteClosedWindowMakesSlotsUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.GlobalWindow = &domain.EnrollmentWindow{
		Start: types.TimeString("16:00"),
		End:   types.TimeString("18:00"),
	}

	// Сегодня 2025-10-06, окно записи уже закрылось
	now := time.Date(2025, 10, 6, 19, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{cfg: cfg},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.False(t, resp.OpenDates["2025-10-06"])
	for _, slot := range resp.Slots {
		switch slot.Date {
		case "2025-10-06":
			require.False(t, slot.Available, "slot %s must be unavailable after the window closes", slot.ID)
		case "2025-10-07":
			require.True(t, slot.Available, "future date slot %s stays available", slot.ID)
		}
	}
}

func TestExecuteIdempotentForFixedInputs(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	booked := &domain.BookingWithUser{
		Booking:      domain.Booking{SlotID: "2025-10-06-s1"},
		UserName:     "Alice",
		TeamLeadName: ptr.Ptr("Bob"),
	}
	uc := newBoardUseCase(
		&fakeBookingRepo{bookings: []*domain.BookingWithUser{booked}},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: true}},
		nil,
		now,
	)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Equal(t, first.Slots, second.Slots)
	require.Equal(t, first.OpenDates, second.OpenDates)
	require.Equal(t, first.SystemActive, second.SystemActive)
}

func TestExecuteReportsInactiveSystem(t *testing.T) {
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	uc := newBoardUseCase(
		&fakeBookingRepo{},
		&fakeConfigRepo{cfg: testConfig()},
		&fakeSettingsRepo{status: &domain.SystemStatus{SystemActive: false}},
		nil,
		now,
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.False(t, resp.SystemActive)
}
