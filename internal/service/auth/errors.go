package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль или логин/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRollNoTaken возвращается, когда номер зачетки уже зарегистрирован
	ErrRollNoTaken = errors.New("roll number already registered")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrWrongPassword возвращается, когда текущий пароль указан неверно
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrPasswordTooShort возвращается, когда новый пароль короче минимальной длины
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
