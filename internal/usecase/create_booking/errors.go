package create_booking

import "errors"

var (
	// ErrSystemInactive возвращается, когда система бронирования выключена
	ErrSystemInactive = errors.New("create_booking: booking system is inactive")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrSlotNotFound возвращается, когда слот отсутствует в каталоге
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrEnrollmentClosed возвращается, когда окно записи на дату слота закрыто
	ErrEnrollmentClosed = errors.New("create_booking: enrollment window is closed")

	// ErrSlotTaken возвращается, когда слот уже занят другой командой
	ErrSlotTaken = errors.New("create_booking: slot is already booked")

	// ErrAlreadyBooked возвращается, когда у пользователя уже есть активное бронирование
	ErrAlreadyBooked = errors.New("create_booking: user already has a booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
