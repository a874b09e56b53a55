package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	adminRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/adminuser"
	userRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/IRP-BookingService/internal/service/auth/models"
	"github.com/m04kA/IRP-BookingService/pkg/authtoken"
)

type fakeUserRepo struct {
	createErr error
	byEmail   *domain.User

	created *domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *user
	created.ID = "user-1"
	r.created = &created
	return &created, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if r.byEmail == nil {
		return nil, userRepo.ErrUserNotFound
	}
	return r.byEmail, nil
}

type fakeAdminRepo struct {
	admin *domain.AdminUser

	updatedPassword string
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, _ string) (*domain.AdminUser, error) {
	if r.admin == nil {
		return nil, adminRepo.ErrAdminNotFound
	}
	return r.admin, nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, _ string, password string) error {
	r.updatedPassword = password
	return nil
}

type fakeTokens struct {
	token string
	role  string
}

func (t *fakeTokens) Issue(_ string, role string) (string, error) {
	t.role = role
	return t.token, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newAuthService(users *fakeUserRepo, admins *fakeAdminRepo) (*Service, *fakeTokens, *fakeTokens) {
	userTokens := &fakeTokens{token: "user-token"}
	adminTokens := &fakeTokens{token: "admin-token"}
	return NewService(users, admins, userTokens, adminTokens, nopLogger{}), userTokens, adminTokens
}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:       "Alice",
		RollNo:     "CS-042",
		Department: "CSE",
		Email:      "Alice@Example.com",
		Year:       "3rd Year",
		Password:   "secret",
	}
}

func TestRegisterIssuesUserToken(t *testing.T) {
	users := &fakeUserRepo{}
	svc, userTokens, _ := newAuthService(users, &fakeAdminRepo{})

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)
	require.Equal(t, "user-token", resp.Token)
	require.Equal(t, authtoken.RoleUser, userTokens.role)
	require.Equal(t, "alice@example.com", users.created.Email, "email must be normalized")
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthService(&fakeUserRepo{}, &fakeAdminRepo{})

	cases := []func(*models.RegisterRequest){
		func(r *models.RegisterRequest) { r.Name = " " },
		func(r *models.RegisterRequest) { r.RollNo = "" },
		func(r *models.RegisterRequest) { r.Email = "not-an-email" },
		func(r *models.RegisterRequest) { r.Password = "abc" },
		func(r *models.RegisterRequest) { r.Year = "" },
	}

	for i, mutate := range cases {
		req := validRegister()
		mutate(req)
		_, err := svc.Register(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput, "case %d", i)
	}
}

func TestRegisterMapsConflicts(t *testing.T) {
	svc, _, _ := newAuthService(&fakeUserRepo{createErr: userRepo.ErrRollNoTaken}, &fakeAdminRepo{})
	_, err := svc.Register(context.Background(), validRegister())
	require.ErrorIs(t, err, ErrRollNoTaken)

	svc, _, _ = newAuthService(&fakeUserRepo{createErr: userRepo.ErrEmailTaken}, &fakeAdminRepo{})
	_, err = svc.Register(context.Background(), validRegister())
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	users := &fakeUserRepo{byEmail: &domain.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Password: "secret",
	}}
	svc, _, _ := newAuthService(users, &fakeAdminRepo{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    " Alice@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "user-token", resp.Token)
	require.Equal(t, "user-1", resp.User.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := &fakeUserRepo{byEmail: &domain.User{Password: "secret"}}
	svc, _, _ := newAuthService(users, &fakeAdminRepo{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Отсутствующий пользователь дает ту же ошибку, что и неверный пароль
	svc, _, _ = newAuthService(&fakeUserRepo{}, &fakeAdminRepo{})
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLoginIssuesAdminToken(t *testing.T) {
	admins := &fakeAdminRepo{admin: &domain.AdminUser{
		ID:       "admin-1",
		Username: "admin",
		Password: "admin",
	}}
	svc, _, adminTokens := newAuthService(&fakeUserRepo{}, admins)

	resp, err := svc.AdminLogin(context.Background(), &models.AdminLoginRequest{
		Username: "admin",
		Password: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin-token", resp.Token)
	require.Equal(t, authtoken.RoleAdmin, adminTokens.role)
}

func TestChangeAdminPassword(t *testing.T) {
	admins := &fakeAdminRepo{admin: &domain.AdminUser{
		ID:       "admin-1",
		Username: "admin",
		Password: "old-pass",
	}}
	svc, _, _ := newAuthService(&fakeUserRepo{}, admins)

	err := svc.ChangeAdminPassword(context.Background(), &models.ChangePasswordRequest{
		Username:        "admin",
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "new-pass", admins.updatedPassword)
}

func TestChangeAdminPasswordWrongCurrent(t *testing.T) {
	admins := &fakeAdminRepo{admin: &domain.AdminUser{Username: "admin", Password: "old-pass"}}
	svc, _, _ := newAuthService(&fakeUserRepo{}, admins)

	err := svc.ChangeAdminPassword(context.Background(), &models.ChangePasswordRequest{
		Username:        "admin",
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	require.ErrorIs(t, err, ErrWrongPassword)
	require.Empty(t, admins.updatedPassword)
}

func TestChangeAdminPasswordTooShort(t *testing.T) {
	svc, _, _ := newAuthService(&fakeUserRepo{}, &fakeAdminRepo{})

	err := svc.ChangeAdminPassword(context.Background(), &models.ChangePasswordRequest{
		Username:        "admin",
		CurrentPassword: "old-pass",
		NewPassword:     "abc",
	})
	require.ErrorIs(t, err, ErrPasswordTooShort)
}
