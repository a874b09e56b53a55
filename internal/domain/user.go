package domain

import "time"

// TeamMember участник команды, заполняется в профиле
type TeamMember struct {
	Name       string `json:"name"`
	RollNo     string `json:"rollNo"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// User represents a registered student account
type User struct {
	ID         string
	Name       string
	RollNo     string
	Department string
	Email      string
	Year       string

	// Пароль хранится и сравнивается в открытом виде (унаследованное поведение,
	// усиление аутентификации вне рамок сервиса)
	Password string

	// Заполняются при бронировании
	TeamLeadName   *string
	TeamLeadRollNo *string
	ProjectName    *string

	TeamMembers []TeamMember

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamProfile данные команды, записываемые в профиль при бронировании
// nil означает, что поле не задано и в БД сохраняется NULL
type TeamProfile struct {
	TeamLeadName   *string
	TeamLeadRollNo *string
	ProjectName    *string
}

// AdminUser учетная запись администратора
type AdminUser struct {
	ID        string
	Username  string
	Password  string
	UpdatedAt time.Time
}
