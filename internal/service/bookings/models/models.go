package models

import (
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// BookingResponse бронирование пользователя
type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SlotID    string    `json:"slotId"`
	SlotDate  string    `json:"slotDate"`
	SlotTime  string    `json:"slotTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminBookingResponse бронирование с данными команды для админской таблицы
type AdminBookingResponse struct {
	BookingResponse
	UserName       string  `json:"userName"`
	UserRollNo     string  `json:"userRollNo"`
	UserDepartment string  `json:"userDepartment"`
	UserEmail      string  `json:"userEmail"`
	UserYear       string  `json:"userYear"`
	TeamLeadName   *string `json:"teamLeadName,omitempty"`
	TeamLeadRollNo *string `json:"teamLeadRollNo,omitempty"`
	ProjectName    *string `json:"projectName,omitempty"`
}

// BookingListResponse список бронирований для админской таблицы
type BookingListResponse struct {
	Bookings []AdminBookingResponse `json:"bookings"`
	Total    int                    `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		SlotID:    b.SlotID,
		SlotDate:  b.SlotDate.Format(domain.DateFormat),
		SlotTime:  b.SlotTime,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingWithUser конвертирует бронирование с данными пользователя
func FromDomainBookingWithUser(b *domain.BookingWithUser) AdminBookingResponse {
	return AdminBookingResponse{
		BookingResponse: *FromDomainBooking(&b.Booking),
		UserName:        b.UserName,
		UserRollNo:      b.UserRollNo,
		UserDepartment:  b.UserDepartment,
		UserEmail:       b.UserEmail,
		UserYear:        b.UserYear,
		TeamLeadName:    b.TeamLeadName,
		TeamLeadRollNo:  b.TeamLeadRollNo,
		ProjectName:     b.ProjectName,
	}
}
