package status

import (
	"context"
	"time"
)

// tickInterval период проверки дедлайна таймера
const tickInterval = time.Second

// Run запускает цикл проверки таймера автоотключения
// Блокируется до отмены контекста; запускать в отдельной горутине
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Status: timer loop stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick отключает систему, если дедлайн таймера наступил
func (s *Service) tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deadline == nil {
		return
	}

	if s.timeProvider.Now().Before(*s.deadline) {
		return
	}

	s.expireLocked(ctx)
}
