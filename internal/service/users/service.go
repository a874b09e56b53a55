package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	userRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/IRP-BookingService/internal/service/users/models"
)

// Service сервис для работы с профилями пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile получает профиль пользователя с данными команды
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	s.logger.Info("GetProfile: user=%s", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile обновляет данные команды пользователя
// Обновляет только переданные поля; состав команды заменяется целиком
func (s *Service) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UpdateProfile: user=%s", userID)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed for user=%s: %v", userID, err)
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	profile := domain.TeamProfile{
		TeamLeadName:   user.TeamLeadName,
		TeamLeadRollNo: user.TeamLeadRollNo,
		ProjectName:    user.ProjectName,
	}
	if req.TeamLeadName != nil {
		profile.TeamLeadName = req.TeamLeadName
	}
	if req.TeamLeadRollNo != nil {
		profile.TeamLeadRollNo = req.TeamLeadRollNo
	}
	if req.ProjectName != nil {
		profile.ProjectName = req.ProjectName
	}

	if err := s.userRepo.UpdateTeamProfile(ctx, userID, profile); err != nil {
		s.logger.Error("UpdateProfile: failed to update team profile for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - update team profile: %v", ErrInternal, err)
	}

	if req.TeamMembers != nil {
		if err := s.userRepo.UpdateTeamMembers(ctx, userID, req.TeamMembers); err != nil {
			s.logger.Error("UpdateProfile: failed to update team members for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: UpdateProfile - update team members: %v", ErrInternal, err)
		}
	}

	updated, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("UpdateProfile: failed to reload user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - reload user: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile updated for user=%s", userID)
	return models.FromDomainUser(updated), nil
}

// validateUpdate валидирует запрос на обновление профиля
func validateUpdate(req *models.UpdateProfileRequest) error {
	if req.ProjectName != nil && len(*req.ProjectName) > domain.MaxProjectNameLength {
		return fmt.Errorf("%w: projectName must be at most %d characters", ErrInvalidInput, domain.MaxProjectNameLength)
	}

	if len(req.TeamMembers) > domain.MaxTeamMembers {
		return fmt.Errorf("%w: at most %d team members allowed", ErrInvalidInput, domain.MaxTeamMembers)
	}

	for i, member := range req.TeamMembers {
		if strings.TrimSpace(member.Name) == "" {
			return fmt.Errorf("%w: team member %d: name is required", ErrInvalidInput, i+1)
		}
		if strings.TrimSpace(member.RollNo) == "" {
			return fmt.Errorf("%w: team member %d: roll number is required", ErrInvalidInput, i+1)
		}
	}

	return nil
}
