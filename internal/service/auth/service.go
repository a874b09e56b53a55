package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	adminRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/adminuser"
	userRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/IRP-BookingService/internal/service/auth/models"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
)

// Service сервис аутентификации пользователей и администраторов
// Токены пользователей и администраторов живут разное время,
// поэтому выпускаются разными менеджерами
type Service struct {
	userRepo    UserRepository
	adminRepo   AdminRepository
	userTokens  TokenIssuer
	adminTokens TokenIssuer
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	adminRepo AdminRepository,
	userTokens TokenIssuer,
	adminTokens TokenIssuer,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		userTokens:  userTokens,
		adminTokens: adminTokens,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя и выпускает сессионный токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: roll_no=%s, email=%s", req.RollNo, req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	user := &domain.User{
		Name:       strings.TrimSpace(req.Name),
		RollNo:     strings.TrimSpace(req.RollNo),
		Department: strings.TrimSpace(req.Department),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Year:       strings.TrimSpace(req.Year),
		Password:   req.Password,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrRollNoTaken) {
			s.logger.Warn("Register: roll_no=%s already registered", req.RollNo)
			return nil, ErrRollNoTaken
		}
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.userTokens.Issue(created.ID, authtoken.RoleUser)
	if err != nil {
		s.logger.Error("Register: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s", created.ID)

	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(created),
	}, nil
}

// Login выполняет вход пользователя по email и паролю
// Пароли хранятся в открытом виде, сравниваем как есть
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: email=%s", email)

	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: no user with email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.Password != req.Password {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.userTokens.Issue(user.ID, authtoken.RoleUser)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s logged in", user.ID)

	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// AdminLogin выполняет вход администратора по логину и паролю
func (s *Service) AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminAuthResponse, error) {
	s.logger.Info("AdminLogin: username=%s", req.Username)

	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("AdminLogin: no admin with username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("AdminLogin: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminLogin - repository error: %v", ErrInternal, err)
	}

	if admin.Password != req.Password {
		s.logger.Warn("AdminLogin: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.adminTokens.Issue(admin.ID, authtoken.RoleAdmin)
	if err != nil {
		s.logger.Error("AdminLogin: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: AdminLogin - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("AdminLogin: admin id=%s logged in", admin.ID)

	return &models.AdminAuthResponse{
		Token:    token,
		Username: admin.Username,
	}, nil
}

// ChangeAdminPassword меняет пароль администратора
// Требует подтверждения текущим паролем; новый пароль не короче MinPasswordLength
func (s *Service) ChangeAdminPassword(ctx context.Context, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangeAdminPassword: username=%s", req.Username)

	if req.Username == "" || req.CurrentPassword == "" {
		return fmt.Errorf("%w: username and current password are required", ErrInvalidInput)
	}

	if len(req.NewPassword) < domain.MinPasswordLength {
		s.logger.Warn("ChangeAdminPassword: new password too short for username=%s", req.Username)
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, domain.MinPasswordLength)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("ChangeAdminPassword: no admin with username=%s", req.Username)
			return ErrInvalidCredentials
		}
		s.logger.Error("ChangeAdminPassword: repository error: %v", err)
		return fmt.Errorf("%w: ChangeAdminPassword - repository error: %v", ErrInternal, err)
	}

	if admin.Password != req.CurrentPassword {
		s.logger.Warn("ChangeAdminPassword: wrong current password for username=%s", req.Username)
		return ErrWrongPassword
	}

	if err := s.adminRepo.UpdatePassword(ctx, admin.ID, req.NewPassword); err != nil {
		s.logger.Error("ChangeAdminPassword: failed to update password: %v", err)
		return fmt.Errorf("%w: ChangeAdminPassword - update password: %v", ErrInternal, err)
	}

	s.logger.Info("ChangeAdminPassword: password updated for admin id=%s", admin.ID)
	return nil
}

// validateRegister валидирует данные регистрации
func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RollNo) == "" {
		return fmt.Errorf("%w: rollNo is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Department) == "" {
		return fmt.Errorf("%w: department is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Year) == "" {
		return fmt.Errorf("%w: year is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	return nil
}
