package eventconfig

import (
	"context"
	"fmt"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// Service сервис управления конфигурацией мероприятия
type Service struct {
	configRepo EventConfigRepository
	notifier   Notifier
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo EventConfigRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Get возвращает текущую конфигурацию мероприятия
func (s *Service) Get(ctx context.Context) (*domain.EventConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("EventConfig: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return cfg, nil
}

// Update заменяет конфигурацию мероприятия
// Меняет форму сетки: новые слоты появляются, убранные исчезают,
// существующие бронирования сохраняют свой slot_id
func (s *Service) Update(ctx context.Context, cfg *domain.EventConfig) error {
	s.logger.Info("EventConfig: update requested, %d dates, %d default slots",
		len(cfg.Dates), len(cfg.DefaultSlots))

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("EventConfig: validation failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(cfg.Instructions) > domain.MaxInstructions {
		s.logger.Warn("EventConfig: too many instructions (%d)", len(cfg.Instructions))
		return fmt.Errorf("%w: at most %d instructions allowed", ErrInvalidConfig, domain.MaxInstructions)
	}

	if err := s.configRepo.Save(ctx, cfg); err != nil {
		s.logger.Error("EventConfig: failed to save config: %v", err)
		return fmt.Errorf("%w: Update - save config: %v", ErrInternal, err)
	}

	s.notifier.ConfigChanged()
	s.logger.Info("EventConfig: config updated")
	return nil
}

// Seed записывает конфигурацию по умолчанию при старте, если её ещё нет
func (s *Service) Seed(ctx context.Context, cfg *domain.EventConfig) error {
	if err := s.configRepo.Seed(ctx, cfg); err != nil {
		s.logger.Error("EventConfig: failed to seed config: %v", err)
		return fmt.Errorf("%w: Seed - repository error: %v", ErrInternal, err)
	}
	return nil
}
