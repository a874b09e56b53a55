package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/IRP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SlotID) == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TeamLeadName) == "" {
		return fmt.Errorf("%w: teamLeadName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TeamLeadRollNo) == "" {
		return fmt.Errorf("%w: teamLeadRollNo is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ProjectName) == "" {
		return fmt.Errorf("%w: projectName is required", ErrInvalidInput)
	}

	if len(req.ProjectName) > domain.MaxProjectNameLength {
		return fmt.Errorf("%w: projectName must be at most %d characters", ErrInvalidInput, domain.MaxProjectNameLength)
	}

	if len(req.TeamMembers) > domain.MaxTeamMembers {
		return fmt.Errorf("%w: at most %d team members allowed", ErrInvalidInput, domain.MaxTeamMembers)
	}

	for i, member := range req.TeamMembers {
		if strings.TrimSpace(member.Name) == "" {
			return fmt.Errorf("%w: team member %d: name is required", ErrInvalidInput, i+1)
		}
		if strings.TrimSpace(member.RollNo) == "" {
			return fmt.Errorf("%w: team member %d: roll number is required", ErrInvalidInput, i+1)
		}
	}

	return nil
}
