package create_booking

import (
	"time"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	createBooking "github.com/m04kA/IRP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID         string              `json:"slotId"`
	TeamLeadName   string              `json:"teamLeadName"`
	TeamLeadRollNo string              `json:"teamLeadRollNo"`
	ProjectName    string              `json:"projectName"`
	TeamMembers    []domain.TeamMember `json:"teamMembers,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	SlotID      string `json:"slotId"`
	SlotDate    string `json:"slotDate"`
	SlotTime    string `json:"slotTime"`
	Status      string `json:"status"`
	ProjectName string `json:"projectName"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// ID пользователя берется из сессионного токена, не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *createBooking.Request {
	return &createBooking.Request{
		UserID:         userID,
		SlotID:         r.SlotID,
		TeamLeadName:   r.TeamLeadName,
		TeamLeadRollNo: r.TeamLeadRollNo,
		ProjectName:    r.ProjectName,
		TeamMembers:    r.TeamMembers,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		SlotID:      resp.SlotID,
		SlotDate:    resp.SlotDate.Format(domain.DateFormat),
		SlotTime:    resp.SlotTime,
		Status:      resp.Status,
		ProjectName: resp.ProjectName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
