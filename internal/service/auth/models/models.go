package models

import "github.com/m04kA/IRP-BookingService/internal/domain"

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name       string `json:"name"`
	RollNo     string `json:"rollNo"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Year       string `json:"year"`
	Password   string `json:"password"`
}

// LoginRequest запрос на вход пользователя
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest запрос на вход администратора
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest запрос на смену пароля администратора
type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserView данные пользователя в ответах аутентификации
type UserView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RollNo     string `json:"rollNo"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Year       string `json:"year"`
}

// AuthResponse ответ на успешную регистрацию или вход
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// AdminAuthResponse ответ на успешный вход администратора
type AdminAuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// FromDomainUser конвертирует доменного пользователя в UserView
func FromDomainUser(user *domain.User) UserView {
	return UserView{
		ID:         user.ID,
		Name:       user.Name,
		RollNo:     user.RollNo,
		Department: user.Department,
		Email:      user.Email,
		Year:       user.Year,
	}
}
