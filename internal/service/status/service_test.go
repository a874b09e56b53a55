package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSettingsRepo struct {
	stored domain.SystemStatus

	setActiveErr   error
	setDeadlineErr error
	clearErr       error
	deactivateErr  error
	getErr         error

	deactivateCalls int
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.SystemStatus, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	stored := r.stored
	return &stored, nil
}

func (r *fakeSettingsRepo) SetActive(_ context.Context, active bool) error {
	if r.setActiveErr != nil {
		return r.setActiveErr
	}
	r.stored.SystemActive = active
	return nil
}

func (r *fakeSettingsRepo) SetAutoDeactivateAt(_ context.Context, deadline time.Time) error {
	if r.setDeadlineErr != nil {
		return r.setDeadlineErr
	}
	r.stored.AutoDeactivateAt = &deadline
	return nil
}

func (r *fakeSettingsRepo) ClearTimer(_ context.Context) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	r.stored.AutoDeactivateAt = nil
	return nil
}

func (r *fakeSettingsRepo) Deactivate(_ context.Context) error {
	r.deactivateCalls++
	if r.deactivateErr != nil {
		return r.deactivateErr
	}
	r.stored.SystemActive = false
	r.stored.AutoDeactivateAt = nil
	return nil
}

type fakeNotifier struct {
	settingsChanged int
}

func (n *fakeNotifier) SettingsChanged() { n.settingsChanged++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newStatusService(repo *fakeSettingsRepo, clock *fakeClock) (*Service, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewService(repo, notifier, clock, nopLogger{}), notifier
}

func TestToggleDeactivateClearsTimer(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, notifier := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 30)
	require.NoError(t, err)

	resp, err := svc.Toggle(context.Background(), false)
	require.NoError(t, err)
	require.False(t, resp.SystemActive)
	require.Nil(t, resp.AutoDeactivateAt)
	require.Nil(t, repo.stored.AutoDeactivateAt)
	require.Equal(t, 2, notifier.settingsChanged)
}

func TestToggleActivateKeepsArmedTimer(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, _ := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 30)
	require.NoError(t, err)

	resp, err := svc.Toggle(context.Background(), true)
	require.NoError(t, err)
	require.True(t, resp.SystemActive)
	require.NotNil(t, resp.AutoDeactivateAt)
}

func TestSetTimerRejectsOutOfRangeDuration(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	repo := &fakeSettingsRepo{}
	svc, _ := newStatusService(repo, clock)

	for _, minutes := range []int{0, -5, domain.MaxTimerMinutes + 1} {
		_, err := svc.SetTimer(context.Background(), minutes)
		require.ErrorIs(t, err, ErrInvalidDuration, "minutes=%d", minutes)
	}
}

func TestSetTimerDoesNotArmOnPersistFailure(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	repo := &fakeSettingsRepo{setDeadlineErr: errors.New("db down")}
	svc, notifier := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 10)
	require.ErrorIs(t, err, ErrInternal)
	require.Equal(t, 0, notifier.settingsChanged)

	status := svc.GetStatus()
	require.Nil(t, status.AutoDeactivateAt)
}

func TestCancelTimerWhenIdle(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	repo := &fakeSettingsRepo{}
	svc, _ := newStatusService(repo, clock)

	_, err := svc.CancelTimer(context.Background())
	require.ErrorIs(t, err, ErrTimerNotArmed)
}

func TestCancelTimerLeavesSystemActive(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, _ := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 15)
	require.NoError(t, err)

	resp, err := svc.CancelTimer(context.Background())
	require.NoError(t, err)
	require.True(t, resp.SystemActive)
	require.Nil(t, resp.AutoDeactivateAt)
}

func TestTickExpiresWhenDeadlinePassed(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, notifier := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 5)
	require.NoError(t, err)

	// До дедлайна система остается активной
	clock.now = clock.now.Add(4 * time.Minute)
	svc.tick(context.Background())
	require.True(t, svc.GetStatus().SystemActive)

	clock.now = clock.now.Add(2 * time.Minute)
	svc.tick(context.Background())

	status := svc.GetStatus()
	require.False(t, status.SystemActive)
	require.Nil(t, status.AutoDeactivateAt)
	require.False(t, repo.stored.SystemActive)
	require.Equal(t, 2, notifier.settingsChanged)
}

func TestTickDeactivatesLocallyOnPersistFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, _ := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 1)
	require.NoError(t, err)

	repo.deactivateErr = errors.New("db down")
	clock.now = clock.now.Add(2 * time.Minute)
	svc.tick(context.Background())

	// Сбой записи не оставляет систему активной дольше дедлайна
	require.False(t, svc.GetStatus().SystemActive)
	require.Equal(t, 1, repo.deactivateCalls)
}

func TestLoadResumesFutureTimer(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(30 * time.Minute)
	clock := &fakeClock{now: now}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{
		SystemActive:     true,
		AutoDeactivateAt: &deadline,
	}}
	svc, _ := newStatusService(repo, clock)

	require.NoError(t, svc.Load(context.Background()))

	status := svc.GetStatus()
	require.True(t, status.SystemActive)
	require.NotNil(t, status.AutoDeactivateAt)
	require.Equal(t, deadline, *status.AutoDeactivateAt)
	require.Equal(t, int64(30*60), *status.RemainingSeconds)
}

func TestLoadExpiresPastDeadlineImmediately(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Minute)
	clock := &fakeClock{now: now}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{
		SystemActive:     true,
		AutoDeactivateAt: &deadline,
	}}
	svc, _ := newStatusService(repo, clock)

	require.NoError(t, svc.Load(context.Background()))

	status := svc.GetStatus()
	require.False(t, status.SystemActive)
	require.Nil(t, status.AutoDeactivateAt)
	require.Equal(t, 1, repo.deactivateCalls)
}

func TestGetStatusClampsNegativeRemaining(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: now}
	repo := &fakeSettingsRepo{stored: domain.SystemStatus{SystemActive: true}}
	svc, _ := newStatusService(repo, clock)

	_, err := svc.SetTimer(context.Background(), 1)
	require.NoError(t, err)

	// Дедлайн прошел, но tick еще не сработал
	clock.now = now.Add(2 * time.Minute)
	status := svc.GetStatus()
	require.Equal(t, int64(0), *status.RemainingSeconds)
}
