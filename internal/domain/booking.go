package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a review-slot booking in the system
type Booking struct {
	ID     string
	UserID string

	// SlotID стабильный составной идентификатор слота каталога ("<date>-<templateID>")
	// Бронирование привязано к слоту по этому ID, а не по отображаемой метке времени
	SlotID string

	// Denormalized display fields
	SlotDate time.Time
	SlotTime string

	Status    BookingStatus
	CreatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// BookingWithUser бронирование вместе с данными владельца
// Используется админским списком и ресолвером занятости слотов
type BookingWithUser struct {
	Booking

	UserName       string
	UserRollNo     string
	UserDepartment string
	UserEmail      string
	UserYear       string

	TeamLeadName   *string
	TeamLeadRollNo *string
	ProjectName    *string
}
