package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/IRP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetUserBooking получает активное бронирование пользователя
func (s *Service) GetUserBooking(ctx context.Context, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetUserBooking: user=%s", userID)

	booking, err := s.bookingRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("GetUserBooking: user=%s has no active booking", userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetUserBooking: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetAllBookings получает все активные бронирования с данными команд
// Используется в админской таблице
func (s *Service) GetAllBookings(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all active bookings")

	bookings, err := s.bookingRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	items := make([]models.AdminBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, models.FromDomainBookingWithUser(b))
	}

	return &models.BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}, nil
}

// RemoveBooking удаляет бронирование и освобождает слот
// Доступно только администратору
func (s *Service) RemoveBooking(ctx context.Context, id string) error {
	s.logger.Info("RemoveBooking: id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RemoveBooking: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("RemoveBooking: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveBooking - repository error: %v", ErrInternal, err)
	}

	s.notifier.BookingsChanged()

	s.logger.Info("RemoveBooking: booking id=%s removed", id)
	return nil
}
