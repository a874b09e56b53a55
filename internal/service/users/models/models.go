package models

import "github.com/m04kA/IRP-BookingService/internal/domain"

// UpdateProfileRequest запрос на обновление данных команды
type UpdateProfileRequest struct {
	TeamLeadName   *string             `json:"teamLeadName,omitempty"`
	TeamLeadRollNo *string             `json:"teamLeadRollNo,omitempty"`
	ProjectName    *string             `json:"projectName,omitempty"`
	TeamMembers    []domain.TeamMember `json:"teamMembers,omitempty"`
}

// ProfileResponse профиль пользователя с данными команды
type ProfileResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	RollNo         string              `json:"rollNo"`
	Department     string              `json:"department"`
	Email          string              `json:"email"`
	Year           string              `json:"year"`
	TeamLeadName   *string             `json:"teamLeadName,omitempty"`
	TeamLeadRollNo *string             `json:"teamLeadRollNo,omitempty"`
	ProjectName    *string             `json:"projectName,omitempty"`
	TeamMembers    []domain.TeamMember `json:"teamMembers"`
}

// FromDomainUser конвертирует доменного пользователя в профиль
func FromDomainUser(user *domain.User) *ProfileResponse {
	members := user.TeamMembers
	if members == nil {
		members = []domain.TeamMember{}
	}

	return &ProfileResponse{
		ID:             user.ID,
		Name:           user.Name,
		RollNo:         user.RollNo,
		Department:     user.Department,
		Email:          user.Email,
		Year:           user.Year,
		TeamLeadName:   user.TeamLeadName,
		TeamLeadRollNo: user.TeamLeadRollNo,
		ProjectName:    user.ProjectName,
		TeamMembers:    members,
	}
}
