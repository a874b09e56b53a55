package status

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	"github.com/m04kA/IRP-BookingService/internal/service/status/models"
)

// Service сервис состояния системы бронирования
// Владеет флагом активности и таймером автоотключения.
// Состояние кешируется в памяти и синхронизируется с БД при каждой записи:
// сервис рассчитан на один экземпляр процесса
type Service struct {
	settingsRepo SettingsRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger

	mu       sync.Mutex
	active   bool
	deadline *time.Time
}

// NewService создает новый экземпляр сервиса состояния
func NewService(
	settingsRepo SettingsRepository,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Service{
		settingsRepo: settingsRepo,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		active:       true,
	}
}

// Load восстанавливает состояние из БД при старте сервиса
// Если сохраненный дедлайн уже в прошлом, система немедленно отключается:
// перезапуск процесса не продлевает таймер
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - get settings: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = stored.SystemActive
	s.deadline = stored.AutoDeactivateAt

	if s.deadline == nil {
		s.logger.Info("Status: loaded state, active=%v, timer idle", s.active)
		return nil
	}

	now := s.timeProvider.Now()
	if s.deadline.After(now) {
		s.logger.Info("Status: loaded state, active=%v, timer resumes with %s remaining",
			s.active, s.deadline.Sub(now).Round(time.Second))
		return nil
	}

	s.logger.Warn("Status: stored deadline %s already passed, deactivating now", s.deadline.Format(time.RFC3339))
	s.expireLocked(ctx)
	return nil
}

// GetStatus возвращает текущее состояние системы
func (s *Service) GetStatus() *models.StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusLocked()
}

// Toggle включает или выключает систему бронирования
// Выключение сбрасывает таймер автоотключения
func (s *Service) Toggle(ctx context.Context, active bool) (*models.StatusResponse, error) {
	s.logger.Info("Status: toggle requested, active=%v", active)

	s.mu.Lock()
	defer s.mu.Unlock()

	if active {
		if err := s.settingsRepo.SetActive(ctx, true); err != nil {
			s.logger.Error("Status: failed to persist activation: %v", err)
			return nil, fmt.Errorf("%w: Toggle - persist activation: %v", ErrInternal, err)
		}
		s.active = true
	} else {
		if err := s.settingsRepo.Deactivate(ctx); err != nil {
			s.logger.Error("Status: failed to persist deactivation: %v", err)
			return nil, fmt.Errorf("%w: Toggle - persist deactivation: %v", ErrInternal, err)
		}
		s.active = false
		s.deadline = nil
	}

	s.notifier.SettingsChanged()
	s.logger.Info("Status: system active=%v", s.active)

	return s.statusLocked(), nil
}

// SetTimer устанавливает таймер автоотключения на указанное число минут
// Состояние меняется только после успешной записи в БД
func (s *Service) SetTimer(ctx context.Context, minutes int) (*models.StatusResponse, error) {
	s.logger.Info("Status: arming timer for %d minutes", minutes)

	if minutes < domain.MinTimerMinutes || minutes > domain.MaxTimerMinutes {
		s.logger.Warn("Status: rejected timer duration %d minutes", minutes)
		return nil, fmt.Errorf("%w: minutes must be between %d and %d",
			ErrInvalidDuration, domain.MinTimerMinutes, domain.MaxTimerMinutes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.timeProvider.Now().Add(time.Duration(minutes) * time.Minute)

	if err := s.settingsRepo.SetAutoDeactivateAt(ctx, deadline); err != nil {
		s.logger.Error("Status: failed to persist timer deadline: %v", err)
		return nil, fmt.Errorf("%w: SetTimer - persist deadline: %v", ErrInternal, err)
	}

	s.deadline = &deadline
	s.notifier.SettingsChanged()
	s.logger.Info("Status: timer armed until %s", deadline.Format(time.RFC3339))

	return s.statusLocked(), nil
}

// CancelTimer отменяет таймер автоотключения
// Флаг активности системы не меняется
func (s *Service) CancelTimer(ctx context.Context) (*models.StatusResponse, error) {
	s.logger.Info("Status: cancelling timer")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deadline == nil {
		s.logger.Warn("Status: cancel requested but timer is idle")
		return nil, ErrTimerNotArmed
	}

	if err := s.settingsRepo.ClearTimer(ctx); err != nil {
		s.logger.Error("Status: failed to persist timer reset: %v", err)
		return nil, fmt.Errorf("%w: CancelTimer - persist reset: %v", ErrInternal, err)
	}

	s.deadline = nil
	s.notifier.SettingsChanged()
	s.logger.Info("Status: timer cancelled, system active=%v", s.active)

	return s.statusLocked(), nil
}

// expireLocked отключает систему по истечении таймера
// Ошибка записи в БД не отменяет отключение: локальный флаг всё равно
// сбрасывается, чтобы система не осталась активной дольше дедлайна
func (s *Service) expireLocked(ctx context.Context) {
	if err := s.settingsRepo.Deactivate(ctx); err != nil {
		s.logger.Error("Status: failed to persist timer expiry, forcing local deactivation: %v", err)
	}

	s.active = false
	s.deadline = nil
	s.notifier.SettingsChanged()
	s.logger.Info("Status: timer expired, system deactivated")
}

func (s *Service) statusLocked() *models.StatusResponse {
	resp := &models.StatusResponse{
		SystemActive: s.active,
	}

	if s.deadline != nil {
		deadline := *s.deadline
		remaining := int64(deadline.Sub(s.timeProvider.Now()).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		resp.AutoDeactivateAt = &deadline
		resp.RemainingSeconds = &remaining
	}

	return resp
}
