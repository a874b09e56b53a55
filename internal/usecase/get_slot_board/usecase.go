package get_slot_board

import (
	"context"

	"github.com/m04kA/IRP-BookingService/internal/catalog"
	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// UseCase use case для сборки сетки слотов
// Накладывает активные бронирования на каталог слотов из конфигурации мероприятия
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   EventConfigRepository
	settingsRepo SettingsRepository
	fallbackCfg  *domain.EventConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// fallbackCfg используется, когда конфигурация в БД недоступна (обычно из файла конфигурации)
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo EventConfigRepository,
	settingsRepo SettingsRepository,
	fallbackCfg *domain.EventConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		settingsRepo: settingsRepo,
		fallbackCfg:  fallbackCfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает актуальную сетку слотов
// Ошибки загрузки бронирований и настроек не фатальны: сетка строится в
// оптимистичном режиме (слоты считаются не занятыми, система активной), чтобы страница
// бронирования оставалась работоспособной. Создание бронирования эти проверки
// выполняет заново внутри транзакции, поэтому оптимизм здесь безопасен.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Загружаем конфигурацию мероприятия
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		if uc.fallbackCfg == nil {
			uc.logger.Error("GetSlotBoard: failed to load event config: %v", err)
			return nil, ErrConfigUnavailable
		}
		uc.logger.Warn("GetSlotBoard: event config unavailable, using fallback: %v", err)
		cfg = uc.fallbackCfg
	}

	// 2. Загружаем состояние системы
	systemActive := true
	status, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Warn("GetSlotBoard: settings unavailable, assuming system active: %v", err)
	} else {
		systemActive = status.SystemActive
	}

	// 3. Загружаем активные бронирования
	bookings, err := uc.bookingRepo.GetAllActive(ctx)
	if err != nil {
		uc.logger.Error("GetSlotBoard: failed to load bookings, rendering slots as unbooked: %v", err)
		bookings = nil
	}

	bySlot := make(map[string]*domain.BookingWithUser, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotID] = b
	}

	// 4. Вычисляем окна записи по датам
	openDates := make(map[string]bool, len(cfg.Dates))
	for _, date := range cfg.Dates {
		openDates[date] = catalog.WindowOpen(cfg, date, now)
	}

	// 5. Строим каталог и накладываем бронирования
	// Слот доступен, только если он не занят и окно записи его даты открыто
	entries := catalog.Build(cfg)
	slots := make([]domain.Slot, 0, len(entries))

	for _, entry := range entries {
		slot := domain.Slot{
			ID:        entry.ID,
			Date:      entry.Date,
			Label:     entry.Label,
			Available: openDates[entry.Date],
		}

		if b, ok := bySlot[entry.ID]; ok {
			slot.Available = false
			slot.BookedBy = bookedByName(b)
			slot.ProjectName = b.ProjectName
		}

		slots = append(slots, slot)
	}

	return &Response{
		SystemActive: systemActive,
		Dates:        cfg.Dates,
		OpenDates:    openDates,
		Slots:        slots,
		GeneratedAt:  now,
	}, nil
}

// bookedByName возвращает имя для отображения на занятом слоте
// Предпочитаем имя тимлида, если команда его указала
func bookedByName(b *domain.BookingWithUser) *string {
	if b.TeamLeadName != nil && *b.TeamLeadName != "" {
		return b.TeamLeadName
	}
	name := b.UserName
	return &name
}
