package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IRP-BookingService/internal/catalog"
	"github.com/m04kA/IRP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/IRP-BookingService/internal/integrations/mailer"
	"github.com/m04kA/IRP-BookingService/pkg/ptr"
)

// UseCase use case для бронирования слота
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	configRepo   EventConfigRepository
	settingsRepo SettingsRepository
	mailerClient MailerClient
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	configRepo EventConfigRepository,
	settingsRepo SettingsRepository,
	mailerClient MailerClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		configRepo:   configRepo,
		settingsRepo: settingsRepo,
		mailerClient: mailerClient,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости слота и вставка бронирования выполняются атомарно,
// а уникальные индексы в БД служат последней линией защиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, slot=%s, project=%q", req.UserID, req.SlotID, req.ProjectName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что система бронирования включена
	status, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get system status: %v", err)
		return nil, fmt.Errorf("%w: failed to get system status: %v", ErrInternal, err)
	}
	if !status.SystemActive {
		uc.logger.Warn("CreateBooking: system inactive, rejecting user=%s", req.UserID)
		return nil, ErrSystemInactive
	}

	// 4. Проверяем, что слот существует в каталоге
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get event config: %v", err)
		return nil, fmt.Errorf("%w: failed to get event config: %v", ErrInternal, err)
	}

	entry, ok := findEntry(catalog.Build(cfg), req.SlotID)
	if !ok {
		uc.logger.Warn("CreateBooking: slot=%s not found in catalog", req.SlotID)
		return nil, ErrSlotNotFound
	}

	// 5. Проверяем окно записи на дату слота
	if !catalog.WindowOpen(cfg, entry.Date, now) {
		uc.logger.Warn("CreateBooking: enrollment window closed for date=%s", entry.Date)
		return nil, ErrEnrollmentClosed
	}

	slotDate, err := time.Parse(domain.DateFormat, entry.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to parse slot date %q: %v", entry.Date, err)
		return nil, fmt.Errorf("%w: failed to parse slot date: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Проверяем, что у пользователя ещё нет активного бронирования (FOR UPDATE)
		_, err := uc.bookingRepo.GetActiveByUserID(txCtx, req.UserID)
		if err == nil {
			uc.logger.Warn("CreateBooking: user=%s already has an active booking", req.UserID)
			return ErrAlreadyBooked
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check user booking: %v", err)
			return fmt.Errorf("%w: failed to check user booking: %v", ErrInternal, err)
		}

		// 6.2. Проверяем, что слот свободен (FOR UPDATE)
		_, err = uc.bookingRepo.GetActiveBySlotID(txCtx, req.SlotID)
		if err == nil {
			uc.logger.Warn("CreateBooking: slot=%s already taken", req.SlotID)
			return ErrSlotTaken
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		// 6.3. Обновляем данные команды пользователя
		profile := domain.TeamProfile{
			TeamLeadName:   ptr.Ptr(req.TeamLeadName),
			TeamLeadRollNo: ptr.Ptr(req.TeamLeadRollNo),
			ProjectName:    ptr.Ptr(req.ProjectName),
		}
		if err := uc.userRepo.UpdateTeamProfile(txCtx, req.UserID, profile); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user=%s not found", req.UserID)
				return ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to update team profile: %v", err)
			return fmt.Errorf("%w: failed to update team profile: %v", ErrInternal, err)
		}

		if req.TeamMembers != nil {
			if err := uc.userRepo.UpdateTeamMembers(txCtx, req.UserID, req.TeamMembers); err != nil {
				uc.logger.Error("CreateBooking: failed to update team members: %v", err)
				return fmt.Errorf("%w: failed to update team members: %v", ErrInternal, err)
			}
		}

		// 6.4. Создаем бронирование
		booking := &domain.Booking{
			UserID:   req.UserID,
			SlotID:   req.SlotID,
			SlotDate: slotDate,
			SlotTime: entry.Label,
			Status:   domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальные индексы могли сработать раньше наших проверок
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrUserAlreadyBooked) {
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for slot=%s", result.ID, result.SlotID)

	// 7. Оповещаем подписчиков об изменении сетки
	uc.notifier.BookingsChanged()

	// 8. Отправляем письмо-подтверждение (после коммита, с graceful degradation)
	uc.sendConfirmation(ctx, result, req)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		SlotID:      result.SlotID,
		SlotDate:    result.SlotDate,
		SlotTime:    result.SlotTime,
		Status:      string(result.Status),
		ProjectName: req.ProjectName,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// sendConfirmation отправляет письмо-подтверждение
// Ошибки рассылки не влияют на результат: бронирование уже зафиксировано
func (uc *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking, req *Request) {
	user, err := uc.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load user for confirmation email: %v", err)
		return
	}

	msg := mailer.BookingConfirmation{
		To:          user.Email,
		Name:        user.Name,
		ProjectName: req.ProjectName,
		SlotDate:    booking.SlotDate.Format(domain.DateFormat),
		SlotTime:    booking.SlotTime,
		BookingID:   booking.ID,
	}

	if err := uc.mailerClient.SendBookingConfirmationWithGracefulDegradation(ctx, msg); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email degraded for booking id=%s: %v", booking.ID, err)
	}
}

// findEntry ищет слот в каталоге по стабильному ID
func findEntry(entries []catalog.Entry, slotID string) (catalog.Entry, bool) {
	for _, entry := range entries {
		if entry.ID == slotID {
			return entry, true
		}
	}
	return catalog.Entry{}, false
}
